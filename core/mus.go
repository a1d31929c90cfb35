package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written mus-format serializers for the persisted types. Field order
// must stay in sync with the struct definitions in models.go.

type idSer struct{}

func (idSer) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idSer) Unmarshal(bs []byte) (v ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return ID(u), n, err
}

func (idSer) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// IDMUS serializes IDs.
var IDMUS = idSer{}

type productSer struct{}

func (productSer) Marshal(v Product, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Brand, bs[n:])
	n += ord.String.Marshal(v.Model, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(string(v.Category), bs[n:])
	n += ord.String.Marshal(v.Price, bs[n:])
	n += ord.String.Marshal(v.Image, bs[n:])
	n += ord.String.Marshal(v.SearchText, bs[n:])
	return n
}

func (productSer) Unmarshal(bs []byte) (v Product, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	if v.Brand, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Model, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var category string
	if category, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	v.Category = Category(category)
	n += n1
	if v.Price, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Image, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.SearchText, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (productSer) Size(v Product) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Brand)
	size += ord.String.Size(v.Model)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(string(v.Category))
	size += ord.String.Size(v.Price)
	size += ord.String.Size(v.Image)
	size += ord.String.Size(v.SearchText)
	return size
}

// ProductMUS serializes Products.
var ProductMUS = productSer{}

type bundleManifestSer struct{}

func (bundleManifestSer) Marshal(v BundleManifest, bs []byte) (n int) {
	n = ord.String.Marshal(v.ScorerKind, bs)
	n += varint.Int.Marshal(v.ProductCount, bs[n:])
	n += varint.Int.Marshal(v.StateSize, bs[n:])
	n += varint.Uint64.Marshal(uint64(v.TrainedAt.UnixMicro()), bs[n:])
	return n
}

func (bundleManifestSer) Unmarshal(bs []byte) (v BundleManifest, n int, err error) {
	var n1 int
	if v.ScorerKind, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.ProductCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.StateSize, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var micros uint64
	if micros, n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.TrainedAt = time.UnixMicro(int64(micros)).UTC()
	return
}

func (bundleManifestSer) Size(v BundleManifest) (size int) {
	size = ord.String.Size(v.ScorerKind)
	size += varint.Int.Size(v.ProductCount)
	size += varint.Int.Size(v.StateSize)
	size += varint.Uint64.Size(uint64(v.TrainedAt.UnixMicro()))
	return size
}

// BundleManifestMUS serializes BundleManifests.
var BundleManifestMUS = bundleManifestSer{}
