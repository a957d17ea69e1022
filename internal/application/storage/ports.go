package storage

import (
	"context"
	"io"
)

// ObjectStorage es el puerto hacia el almacenamiento de blobs de imágenes.
// Upload devuelve la URL durable emitida por el proveedor; Delete recibe esa
// misma URL y el adaptador deriva de ella el identificador del blob.
type ObjectStorage interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, imageURL string) error
}
