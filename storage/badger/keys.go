package badger

import (
	"encoding/binary"
)

// Key prefixes for the bundle layout. The manifest is written last within
// the save transaction so a bundle without one is never served.
const (
	bundleManifestKey  = "bunman"
	bundleStateKey     = "bunstate"
	bundleProductBytes = "bunprod:"
)

// makeProductKey generates a key for a bundled product by catalog position.
// Positions go in BigEndian so prefix iteration restores the build order.
func makeProductKey(position int) []byte {
	prefix := []byte(bundleProductBytes)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(position))
	return buf
}
