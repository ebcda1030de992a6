package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712/productos/cocacola.jpg", "productos/cocacola"},
		{"https://res.cloudinary.com/demo/image/upload/v1712/users/avatar.v2.png", "users/avatar"},
		{"https://res.cloudinary.com/demo/image/upload/productos/sinext", "productos/sinext"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, assets.PublicIDFromURL(tt.url), tt.url)
	}
}

func TestFile_ValidateExtension(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.PNG", "a.jpeg", "a.gif", "a.webp"} {
		f := &assets.File{Filename: name}
		assert.NoError(t, f.ValidateExtension(), name)
	}
	for _, name := range []string{"a.pdf", "a", "a.exe"} {
		f := &assets.File{Filename: name}
		assert.Error(t, f.ValidateExtension(), name)
	}
}
