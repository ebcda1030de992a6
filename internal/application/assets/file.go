package assets

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
)

// AllowedExtensions formatos de imagen aceptados.
var AllowedExtensions = []string{"jpg", "png", "jpeg", "gif", "webp"}

// File imagen recibida en una petición multipart, pendiente de subir.
type File struct {
	Filename string
	Content  io.Reader
}

// ValidateExtension rechaza archivos cuyo formato no está permitido.
func (f *File) ValidateExtension() error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Filename), "."))
	for _, a := range AllowedExtensions {
		if ext == a {
			return nil
		}
	}
	return domain.Validationf("Formato de imagen no permitido: %q", ext)
}
