package xxh

import "math/bits"

const (
	prime64_1 uint64 = 11400714785074694791
	prime64_2 uint64 = 14029467366897019727
	prime64_3 uint64 = 1609587929392839161
	prime64_4 uint64 = 9650029242287828579
	prime64_5 uint64 = 2870177450012600261
)

// Sum64 computes the XXH64 hash of b with the given seed.
// Zero heap allocations.
func Sum64(b []byte, seed uint64) uint64 {
	n := len(b)

	var h uint64
	if n >= 32 {
		v1 := seed + prime64_1 + prime64_2
		v2 := seed + prime64_2
		v3 := seed
		v4 := seed - prime64_1
		for len(b) >= 32 {
			v1 = round64(v1, le64(b[0:8:len(b)]))
			v2 = round64(v2, le64(b[8:16:len(b)]))
			v3 = round64(v3, le64(b[16:24:len(b)]))
			v4 = round64(v4, le64(b[24:32:len(b)]))
			b = b[32:]
		}
		h = bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
			bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)
		h = mergeRound64(h, v1)
		h = mergeRound64(h, v2)
		h = mergeRound64(h, v3)
		h = mergeRound64(h, v4)
	} else {
		h = seed + prime64_5
	}

	h += uint64(n)

	for len(b) >= 8 {
		h ^= round64(0, le64(b[:8]))
		h = bits.RotateLeft64(h, 27)*prime64_1 + prime64_4
		b = b[8:]
	}
	if len(b) >= 4 {
		h ^= uint64(le32(b[:4])) * prime64_1
		h = bits.RotateLeft64(h, 23)*prime64_2 + prime64_3
		b = b[4:]
	}
	for _, c := range b {
		h ^= uint64(c) * prime64_5
		h = bits.RotateLeft64(h, 11) * prime64_1
	}

	return avalanche64(h)
}

// Sum64String computes the XXH64 hash of s with the given seed without
// copying s.
func Sum64String(s string, seed uint64) uint64 {
	return Sum64(strview(s), seed)
}

func round64(acc, input uint64) uint64 {
	acc += input * prime64_2
	acc = bits.RotateLeft64(acc, 31)
	acc *= prime64_1
	return acc
}

func mergeRound64(acc, val uint64) uint64 {
	acc ^= round64(0, val)
	acc = acc*prime64_1 + prime64_4
	return acc
}

func avalanche64(h uint64) uint64 {
	h ^= h >> 33
	h *= prime64_2
	h ^= h >> 29
	h *= prime64_3
	h ^= h >> 32
	return h
}
