package storage

import (
	"github.com/amnamine/djiblistore/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalProduct serializes a Product to bytes.
func MarshalProduct(product *core.Product) []byte {
	buf := make([]byte, core.ProductMUS.Size(*product))
	core.ProductMUS.Marshal(*product, buf)
	return buf
}

// UnmarshalProduct deserializes a Product from bytes.
func UnmarshalProduct(data []byte) (*core.Product, error) {
	product, _, err := core.ProductMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// MarshalManifest serializes a BundleManifest to bytes.
func MarshalManifest(manifest *core.BundleManifest) []byte {
	buf := make([]byte, core.BundleManifestMUS.Size(*manifest))
	core.BundleManifestMUS.Marshal(*manifest, buf)
	return buf
}

// UnmarshalManifest deserializes a BundleManifest from bytes.
func UnmarshalManifest(data []byte) (*core.BundleManifest, error) {
	manifest, _, err := core.BundleManifestMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &manifest, nil
}
