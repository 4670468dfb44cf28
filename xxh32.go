package xxh

import "math/bits"

const (
	prime32_1 uint32 = 2654435761
	prime32_2 uint32 = 2246822519
	prime32_3 uint32 = 3266489917
	prime32_4 uint32 = 668265263
	prime32_5 uint32 = 374761393
)

// Sum32 computes the XXH32 hash of b with the given seed.
// Zero heap allocations.
func Sum32(b []byte, seed uint32) uint32 {
	n := len(b)

	var h uint32
	if n >= 16 {
		v1 := seed + prime32_1 + prime32_2
		v2 := seed + prime32_2
		v3 := seed
		v4 := seed - prime32_1
		for len(b) >= 16 {
			v1 = round32(v1, le32(b[0:4:len(b)]))
			v2 = round32(v2, le32(b[4:8:len(b)]))
			v3 = round32(v3, le32(b[8:12:len(b)]))
			v4 = round32(v4, le32(b[12:16:len(b)]))
			b = b[16:]
		}
		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = seed + prime32_5
	}

	h += uint32(n)

	for len(b) >= 4 {
		h += le32(b[:4]) * prime32_3
		h = bits.RotateLeft32(h, 17) * prime32_4
		b = b[4:]
	}
	for _, c := range b {
		h += uint32(c) * prime32_5
		h = bits.RotateLeft32(h, 11) * prime32_1
	}

	h ^= h >> 15
	h *= prime32_2
	h ^= h >> 13
	h *= prime32_3
	h ^= h >> 16
	return h
}

func round32(acc, input uint32) uint32 {
	acc += input * prime32_2
	acc = bits.RotateLeft32(acc, 13)
	acc *= prime32_1
	return acc
}
