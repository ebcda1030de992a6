package ports

import (
	"context"
	"io"
)

// AssetStore puerto de salida hacia el almacenamiento remoto de imágenes.
type AssetStore interface {
	// Upload sube el contenido a folder y devuelve la URL pública segura.
	Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	// Delete borra el asset identificado por publicID ("carpeta/nombre").
	Delete(ctx context.Context, publicID string) error
}
