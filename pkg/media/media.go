package media

import "context"

// Uploader is the media host boundary: hand it image bytes, get back the
// publicly served URL. Implementations talk to an external object store.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
