package output

import "context"

// LocaleStore lit et réécrit le fichier d'une langue.
type LocaleStore interface {
	Path(tag string) string
	Read(ctx context.Context, tag string) ([]byte, error)
	Write(ctx context.Context, tag string, data []byte) error
}
