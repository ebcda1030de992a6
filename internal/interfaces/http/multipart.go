package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
)

// imageField nombre del campo multipart con la imagen.
const imageField = "img"

// formImage devuelve la imagen adjunta en el campo img, o nil si no se envió.
// El llamador debe cerrar el io.Closer devuelto.
func formImage(c *fiber.Ctx) (*assets.File, io.Closer, error) {
	fh, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &assets.File{Filename: fh.Filename, Content: f}, f, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
