package xxh

import (
	"hash"
	"math/bits"
)

// Hasher64 is a streaming XXH64 hasher. The zero value is ready to use and
// hashes with seed 0; use New64 or ResetSeed for a different seed. Designed
// for stack allocation.
//
// Hasher64 implements hash.Hash64. For identical input the digest is
// bit-identical to Sum64, no matter how the writes are split.
type Hasher64 struct {
	v1, v2, v3, v4 uint64
	seed           uint64
	total          uint64
	mem            [32]byte
	n              int // bytes buffered in mem
}

var _ hash.Hash64 = (*Hasher64)(nil)

// New64 returns a Hasher64 hashing with the given seed.
func New64(seed uint64) *Hasher64 {
	return &Hasher64{seed: seed}
}

// Reset drops the absorbed input, keeping the configured seed.
func (h *Hasher64) Reset() {
	h.total = 0
	h.n = 0
}

// ResetSeed drops the absorbed input and installs a new seed.
func (h *Hasher64) ResetSeed(seed uint64) {
	h.seed = seed
	h.total = 0
	h.n = 0
}

// Write absorbs p into the hasher. It always returns len(p), nil.
func (h *Hasher64) Write(p []byte) (int, error) {
	n := len(p)

	if h.n+n < 32 {
		copy(h.mem[h.n:], p)
		h.n += n
		h.total += uint64(n)
		return n, nil
	}

	if h.total < 32 {
		// First full stripe since reset, derive the lanes from the seed.
		h.v1 = h.seed + prime64_1 + prime64_2
		h.v2 = h.seed + prime64_2
		h.v3 = h.seed
		h.v4 = h.seed - prime64_1
	}
	h.total += uint64(n)

	if h.n > 0 {
		// Finish off the partial stripe.
		copy(h.mem[h.n:], p)
		h.v1 = round64(h.v1, le64(h.mem[0:8]))
		h.v2 = round64(h.v2, le64(h.mem[8:16]))
		h.v3 = round64(h.v3, le64(h.mem[16:24]))
		h.v4 = round64(h.v4, le64(h.mem[24:32]))
		p = p[32-h.n:]
		h.n = 0
	}

	if len(p) >= 32 {
		v1, v2, v3, v4 := h.v1, h.v2, h.v3, h.v4
		for len(p) >= 32 {
			v1 = round64(v1, le64(p[0:8:len(p)]))
			v2 = round64(v2, le64(p[8:16:len(p)]))
			v3 = round64(v3, le64(p[16:24:len(p)]))
			v4 = round64(v4, le64(p[24:32:len(p)]))
			p = p[32:]
		}
		h.v1, h.v2, h.v3, h.v4 = v1, v2, v3, v4
	}

	copy(h.mem[:], p)
	h.n = len(p)
	return n, nil
}

// WriteString absorbs s into the hasher without copying it.
func (h *Hasher64) WriteString(s string) (int, error) {
	return h.Write(strview(s))
}

// Sum64 returns the hash of the input absorbed so far.
// Does not modify the hasher state.
func (h *Hasher64) Sum64() uint64 {
	var x uint64
	if h.total >= 32 {
		v1, v2, v3, v4 := h.v1, h.v2, h.v3, h.v4
		x = bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
			bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)
		x = mergeRound64(x, v1)
		x = mergeRound64(x, v2)
		x = mergeRound64(x, v3)
		x = mergeRound64(x, v4)
	} else {
		x = h.seed + prime64_5
	}

	x += h.total

	i, end := 0, h.n
	for ; i+8 <= end; i += 8 {
		x ^= round64(0, le64(h.mem[i:i+8]))
		x = bits.RotateLeft64(x, 27)*prime64_1 + prime64_4
	}
	if i+4 <= end {
		x ^= uint64(le32(h.mem[i:i+4])) * prime64_1
		x = bits.RotateLeft64(x, 23)*prime64_2 + prime64_3
		i += 4
	}
	for ; i < end; i++ {
		x ^= uint64(h.mem[i]) * prime64_5
		x = bits.RotateLeft64(x, 11) * prime64_1
	}

	return avalanche64(x)
}

// Sum appends the big-endian digest to b and returns the result.
func (h *Hasher64) Sum(b []byte) []byte {
	s := h.Sum64()
	return append(b,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s),
	)
}

// Size returns 8, the digest size in bytes.
func (h *Hasher64) Size() int { return 8 }

// BlockSize returns 32, the internal stripe size in bytes.
func (h *Hasher64) BlockSize() int { return 32 }
