package storage

import (
	"context"

	"github.com/amnamine/djiblistore/core"
)

// BundleRepository persists trained model bundles. A repository holds at
// most one bundle; saving replaces the previous one atomically.
type BundleRepository interface {
	// SaveBundle stores the bundle, replacing any existing one. The write
	// is transactional: readers see either the old bundle or the new one.
	SaveBundle(ctx context.Context, bundle *core.ModelBundle) error

	// LoadBundle returns the stored bundle.
	// Returns ErrNotFound when nothing has been saved, and
	// ErrBundleIncomplete when the stored data contradicts its manifest.
	LoadBundle(ctx context.Context) (*core.ModelBundle, error)

	// Close releases repository resources.
	Close() error
}
