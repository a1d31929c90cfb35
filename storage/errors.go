package storage

import "errors"

var (
	// ErrNotFound indicates that no bundle has been saved yet.
	ErrNotFound = errors.New("record not found")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrTruncatedData indicates that data was truncated during reading.
	ErrTruncatedData = errors.New("truncated data")

	// ErrBundleIncomplete indicates a stored bundle that does not match its
	// manifest. Loading fails closed rather than serving a partial model.
	ErrBundleIncomplete = errors.New("bundle does not match manifest")
)
