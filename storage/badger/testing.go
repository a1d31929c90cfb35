package badger

import "github.com/amnamine/djiblistore/storage"

// NewMemoryBundleRepository creates an in-memory bundle repository for
// testing. Caller must close the repo and the backend when done.
func NewMemoryBundleRepository() (storage.BundleRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewBundleRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}
