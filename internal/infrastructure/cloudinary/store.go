package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/pkg/config"
)

var (
	_ ports.AssetStore = (*Store)(nil)
	_ ports.AssetStore = Disabled{}
)

// ErrNotConfigured no hay credenciales de Cloudinary.
var ErrNotConfigured = errors.New("cloudinary: credenciales no configuradas")

// Store adaptador de ports.AssetStore sobre Cloudinary.
type Store struct {
	cld *cloudinary.Cloudinary
}

// New crea el cliente con las credenciales de la configuración.
func New(cfg config.CloudinaryConfig) (*Store, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: crear cliente: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Store{cld: cld}, nil
}

// Upload sube la imagen a folder y devuelve su URL https. Cloudinary genera el nombre final;
// filename solo se usa en los mensajes de error.
func (s *Store) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %s: %w", filename, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload %s: %s", filename, res.Error.Message)
	}
	return res.SecureURL, nil
}

// Delete borra el asset. Un asset que ya no existe no es un error.
func (s *Store) Delete(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, res.Error.Message)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy %s: resultado %q", publicID, res.Result)
	}
	return nil
}

// Disabled almacén usado cuando no hay credenciales: rechaza subidas e ignora borrados.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) error { return nil }
