package assets

import "strings"

// Carpetas remotas donde se guardan las imágenes.
const (
	FolderProductos = "productos"
	FolderUsers     = "users"
)

// PublicIDFromURL deriva el identificador remoto de una URL de asset:
// penúltimo segmento + "/" + último segmento cortado en su primer ".".
//
//	https://res.cloudinary.com/demo/image/upload/v1/productos/abc.jpg -> "productos/abc"
//	https://res.cloudinary.com/demo/image/upload/v1/productos/abc.x.jpg -> "productos/abc"
func PublicIDFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		name, _, _ := strings.Cut(url, ".")
		return name
	}
	folder := parts[len(parts)-2]
	name, _, _ := strings.Cut(parts[len(parts)-1], ".")
	return folder + "/" + name
}
