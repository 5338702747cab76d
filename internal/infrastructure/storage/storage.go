// Package storage provides object storage backends for profile pictures.
package storage

import "context"

// AvatarStorage abstracts where uploaded profile pictures live.
// Keys are opaque, slash-separated paths generated by the application.
type AvatarStorage interface {
	// Save writes data under the given key, replacing any existing object
	Save(ctx context.Context, key string, data []byte, contentType string) error

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is stored under the key
	Exists(ctx context.Context, key string) (bool, error)
}
