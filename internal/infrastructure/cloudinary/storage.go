package cloudinary

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/jhoicas/tienda-api/internal/application/storage"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/config"
)

var _ storage.ObjectStorage = (*Storage)(nil)

// Storage adaptador del puerto ObjectStorage sobre Cloudinary.
// Las URLs devueltas son las secure_url del proveedor; el public_id para
// borrar se deriva de la URL (carpeta + nombre de archivo sin extensión).
type Storage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New construye el adaptador. CLOUDINARY_URL tiene prioridad sobre las credenciales sueltas.
func New(cfg config.CloudinaryConfig) (*Storage, error) {
	var cld *cloudinary.Cloudinary
	var err error
	if cfg.URL != "" {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	folder := cfg.Folder
	if folder == "" {
		folder = "products"
	}
	return &Storage{cld: cld, folder: folder}, nil
}

// Upload sube un blob y devuelve su URL durable (secure_url).
func (s *Storage) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("upload %s: %s", filename, res.Error.Message)
	}
	return res.SecureURL, nil
}

// Delete borra el blob identificado por la URL durable.
func (s *Storage) Delete(ctx context.Context, imageURL string) error {
	publicID, err := PublicIDFromURL(imageURL)
	if err != nil {
		return err
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Result)
	}
	return nil
}

// PublicIDFromURL deriva el public_id desde una URL durable: los dos últimos
// segmentos del path, quitando la extensión del archivo.
// Ej: https://res.cloudinary.com/demo/image/upload/v1/products/abc.jpg -> products/abc
func PublicIDFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil || !u.IsAbs() {
		return "", domain.ErrInvalidImageURL
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return "", domain.ErrInvalidImageURL
	}
	folder := segments[len(segments)-2]
	file := segments[len(segments)-1]
	file = strings.TrimSuffix(file, path.Ext(file))
	if folder == "" || file == "" {
		return "", domain.ErrInvalidImageURL
	}
	return folder + "/" + file, nil
}
