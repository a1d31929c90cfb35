package linear

import (
	"fmt"
	"math"

	"github.com/mus-format/mus-go/varint"

	"github.com/amnamine/djiblistore/scorer"
)

// Binary state layout: hash dims, max n-gram, bias, weight count, then
// (dim, value) pairs. Floats travel as raw IEEE 754 bits in a varint.

// MarshalBinary snapshots the trained model for bundle persistence.
func (s *Scorer) MarshalBinary() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.trained {
		return nil, scorer.ErrBadState
	}

	size := varint.Uint32.Size(s.config.HashDims)
	size += varint.Int.Size(s.config.MaxNGram)
	size += varint.Uint64.Size(math.Float64bits(s.bias))
	size += varint.Int.Size(len(s.weights))
	for dim, w := range s.weights {
		size += varint.Uint32.Size(dim)
		size += varint.Uint64.Size(math.Float64bits(w))
	}

	bs := make([]byte, size)
	n := varint.Uint32.Marshal(s.config.HashDims, bs)
	n += varint.Int.Marshal(s.config.MaxNGram, bs[n:])
	n += varint.Uint64.Marshal(math.Float64bits(s.bias), bs[n:])
	n += varint.Int.Marshal(len(s.weights), bs[n:])
	for dim, w := range s.weights {
		n += varint.Uint32.Marshal(dim, bs[n:])
		n += varint.Uint64.Marshal(math.Float64bits(w), bs[n:])
	}
	return bs, nil
}

// UnmarshalBinary restores a trained model from bundle state.
func (s *Scorer) UnmarshalBinary(bs []byte) error {
	dims, n, err := varint.Uint32.Unmarshal(bs)
	if err != nil {
		return fmt.Errorf("%w: hash dims: %w", scorer.ErrBadState, err)
	}
	if dims == 0 {
		return fmt.Errorf("%w: zero hash dims", scorer.ErrBadState)
	}
	var n1 int
	maxNGram, n1, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return fmt.Errorf("%w: max n-gram: %w", scorer.ErrBadState, err)
	}
	n += n1
	biasBits, n1, err := varint.Uint64.Unmarshal(bs[n:])
	if err != nil {
		return fmt.Errorf("%w: bias: %w", scorer.ErrBadState, err)
	}
	n += n1
	count, n1, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return fmt.Errorf("%w: weight count: %w", scorer.ErrBadState, err)
	}
	n += n1
	if count < 0 {
		return fmt.Errorf("%w: negative weight count", scorer.ErrBadState)
	}

	weights := make(map[uint32]float64, count)
	for i := 0; i < count; i++ {
		dim, n1, err := varint.Uint32.Unmarshal(bs[n:])
		if err != nil {
			return fmt.Errorf("%w: weight %d dim: %w", scorer.ErrBadState, i, err)
		}
		n += n1
		bits, n1, err := varint.Uint64.Unmarshal(bs[n:])
		if err != nil {
			return fmt.Errorf("%w: weight %d value: %w", scorer.ErrBadState, i, err)
		}
		n += n1
		weights[dim] = math.Float64frombits(bits)
	}

	s.mu.Lock()
	s.config.HashDims = dims
	s.config.MaxNGram = maxNGram
	s.bias = math.Float64frombits(biasBits)
	s.weights = weights
	s.trained = true
	s.mu.Unlock()
	return nil
}
