package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/storage"
)

// BundleRepository implements storage.BundleRepository for BadgerDB.
type BundleRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.BundleRepository = (*BundleRepository)(nil)

// NewBundleRepository creates a new BundleRepository.
func NewBundleRepository(backend *Backend) (*BundleRepository, error) {
	if backend == nil {
		return nil, errors.New("bundle repository requires a backend")
	}
	return &BundleRepository{
		backend: backend,
		logger:  slog.Default().With("component", "bundle-repository"),
	}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *BundleRepository) Close() error {
	return nil
}

// SaveBundle stores the bundle in a single transaction, replacing any
// previous one. The manifest goes in last so readers never see a bundle
// without its integrity record.
func (r *BundleRepository) SaveBundle(ctx context.Context, bundle *core.ModelBundle) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if bundle.ScorerKind == "" {
		return fmt.Errorf("%w: empty scorer kind", storage.ErrSerializationFailed)
	}
	if len(bundle.Products) == 0 {
		return core.ErrNoProducts
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if err := clearProducts(tx); err != nil {
			return err
		}

		for i := range bundle.Products {
			value := storage.MarshalProduct(&bundle.Products[i])
			if err := tx.Set(makeProductKey(i), value); err != nil {
				return err
			}
		}

		if err := tx.Set([]byte(bundleStateKey), bundle.ScorerState); err != nil {
			return err
		}

		manifest := core.BundleManifest{
			ScorerKind:   bundle.ScorerKind,
			ProductCount: len(bundle.Products),
			StateSize:    len(bundle.ScorerState),
			TrainedAt:    bundle.TrainedAt,
		}
		if err := tx.Set([]byte(bundleManifestKey), storage.MarshalManifest(&manifest)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	r.logger.Info("saved model bundle",
		"scorerKind", bundle.ScorerKind,
		"products", len(bundle.Products),
		"stateBytes", len(bundle.ScorerState))
	return nil
}

// LoadBundle reads the stored bundle and verifies it against its manifest.
func (r *BundleRepository) LoadBundle(ctx context.Context) (*core.ModelBundle, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bundle core.ModelBundle
	var manifest *core.BundleManifest

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(bundleManifestKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			manifest, err = storage.UnmarshalManifest(val)
			return err
		}); err != nil {
			return fmt.Errorf("%w: manifest: %w", storage.ErrSerializationFailed, err)
		}

		item, err = tx.Get([]byte(bundleStateKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: scorer state missing", storage.ErrBundleIncomplete)
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			bundle.ScorerState = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}

		bundle.Products, err = readProducts(tx)
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	if len(bundle.Products) != manifest.ProductCount {
		return nil, fmt.Errorf("%w: %d products stored, manifest says %d",
			storage.ErrBundleIncomplete, len(bundle.Products), manifest.ProductCount)
	}
	if len(bundle.ScorerState) != manifest.StateSize {
		return nil, fmt.Errorf("%w: %d state bytes stored, manifest says %d",
			storage.ErrBundleIncomplete, len(bundle.ScorerState), manifest.StateSize)
	}

	bundle.ScorerKind = manifest.ScorerKind
	bundle.TrainedAt = manifest.TrainedAt
	return &bundle, nil
}

func clearProducts(tx *badger.Txn) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(bundleProductBytes)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)

	var stale [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		stale = append(stale, iter.Item().KeyCopy(nil))
	}
	iter.Close()

	for _, key := range stale {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func readProducts(tx *badger.Txn) ([]core.Product, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(bundleProductBytes)
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var products []core.Product
	for iter.Rewind(); iter.Valid(); iter.Next() {
		var product *core.Product
		err := iter.Item().Value(func(val []byte) error {
			var err error
			product, err = storage.UnmarshalProduct(val)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("%w: product: %w", storage.ErrSerializationFailed, err)
		}
		products = append(products, *product)
	}
	return products, nil
}
