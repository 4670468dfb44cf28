package xxh

import "math/bits"

// Sum128 computes the 128-bit XXH3 hash of b.
// Zero heap allocations.
func Sum128(b []byte) Uint128 {
	return hash128(b, 0, kSecret[:])
}

// Sum128Seeded computes the 128-bit XXH3 hash of b with the given seed.
// Seed 0 is equivalent to Sum128.
func Sum128Seeded(b []byte, seed uint64) Uint128 {
	if seed == 0 {
		return hash128(b, 0, kSecret[:])
	}
	if len(b) > midsizeMax {
		var sec [secretDefaultSize]byte
		deriveSecret(&sec, seed)
		return hash128(b, seed, sec[:])
	}
	return hash128(b, seed, kSecret[:])
}

// Sum128WithSecret computes the 128-bit XXH3 hash of b keyed by a custom
// secret. The secret is used verbatim and must carry at least SecretSizeMin
// bytes, otherwise ErrSecretTooShort is returned.
func Sum128WithSecret(b, secret []byte) (Uint128, error) {
	if len(secret) < SecretSizeMin {
		return Uint128{}, ErrSecretTooShort
	}
	return hash128(b, 0, secret), nil
}

func hash128(b []byte, seed uint64, sec []byte) Uint128 {
	n := len(b)
	switch {
	case n <= 16:
		return hash128Len0to16(b, seed, sec)
	case n <= 128:
		return hash128Len17to128(b, seed, sec)
	case n <= midsizeMax:
		return hash128Len129to240(b, seed, sec)
	}
	var acc [8]uint64
	hash3LongAccs(&acc, b, sec)
	return Uint128{
		Hi: mergeAccs(&acc, sec[len(sec)-64-secretMergeAccsStart:], ^(uint64(n) * prime64_2)),
		Lo: mergeAccs(&acc, sec[secretMergeAccsStart:], uint64(n)*prime64_1),
	}
}

func hash128Len0to16(b []byte, seed uint64, sec []byte) Uint128 {
	n := len(b)
	switch {
	case n > 8:
		bfl := (le64(sec[32:]) ^ le64(sec[40:])) - seed
		bfh := (le64(sec[48:]) ^ le64(sec[56:])) + seed
		lo := le64(b)
		hi := le64(b[n-8:])
		mhi, mlo := bits.Mul64(lo^hi^bfl, prime64_1)
		mlo += uint64(n-1) << 54
		hi ^= bfh
		mhi += hi + uint64(uint32(hi))*uint64(prime32_2-1)
		mlo ^= bits.ReverseBytes64(mhi)
		rhi, rlo := bits.Mul64(mlo, prime64_2)
		rhi += mhi * prime64_2
		return Uint128{Hi: avalanche3(rhi), Lo: avalanche3(rlo)}
	case n >= 4:
		seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
		in := uint64(le32(b)) | uint64(le32(b[n-4:]))<<32
		keyed := in ^ ((le64(sec[16:]) ^ le64(sec[24:])) + seed)
		mhi, mlo := bits.Mul64(keyed, prime64_1+uint64(n)<<2)
		mhi += mlo << 1
		mlo ^= mhi >> 3
		mlo ^= mlo >> 35
		mlo *= primeMX2
		mlo ^= mlo >> 28
		return Uint128{Hi: avalanche3(mhi), Lo: mlo}
	case n > 0:
		cl := uint32(b[0])<<16 | uint32(b[n>>1])<<24 | uint32(b[n-1]) | uint32(n)<<8
		ch := bits.RotateLeft32(bits.ReverseBytes32(cl), 13)
		bfl := uint64(le32(sec)^le32(sec[4:])) + seed
		bfh := uint64(le32(sec[8:])^le32(sec[12:])) - seed
		return Uint128{
			Hi: avalanche64(uint64(ch) ^ bfh),
			Lo: avalanche64(uint64(cl) ^ bfl),
		}
	}
	return Uint128{
		Hi: avalanche64(seed ^ le64(sec[80:]) ^ le64(sec[88:])),
		Lo: avalanche64(seed ^ le64(sec[64:]) ^ le64(sec[72:])),
	}
}

func hash128Len17to128(b []byte, seed uint64, sec []byte) Uint128 {
	n := len(b)
	al := uint64(n) * prime64_1
	var ah uint64
	if n > 32 {
		if n > 64 {
			if n > 96 {
				al, ah = mix32(al, ah, b[48:], b[n-64:], sec[96:], seed)
			}
			al, ah = mix32(al, ah, b[32:], b[n-48:], sec[64:], seed)
		}
		al, ah = mix32(al, ah, b[16:], b[n-32:], sec[32:], seed)
	}
	al, ah = mix32(al, ah, b, b[n-16:], sec, seed)
	return fold128(al, ah, uint64(n), seed)
}

func hash128Len129to240(b []byte, seed uint64, sec []byte) Uint128 {
	n := len(b)
	al := uint64(n) * prime64_1
	var ah uint64
	for i := 0; i < 4; i++ {
		al, ah = mix32(al, ah, b[32*i:], b[32*i+16:], sec[32*i:], seed)
	}
	al = avalanche3(al)
	ah = avalanche3(ah)
	for i := 4; i < n/32; i++ {
		al, ah = mix32(al, ah, b[32*i:], b[32*i+16:], sec[midsizeStartOffset+32*(i-4):], seed)
	}
	// The trailing pair reads backwards and flips the seed.
	al, ah = mix32(al, ah, b[n-16:], b[n-32:], sec[136-midsizeLastOffset-16:], -seed)
	return fold128(al, ah, uint64(n), seed)
}

// mix32 folds two 16-byte lanes keyed by 32 bytes of secret, cross-feeding
// the raw input of each lane into the other accumulator.
func mix32(al, ah uint64, b1, b2, sec []byte, seed uint64) (uint64, uint64) {
	al += mix16(b1, sec, seed)
	al ^= le64(b2) + le64(b2[8:])
	ah += mix16(b2, sec[16:], seed)
	ah ^= le64(b1) + le64(b1[8:])
	return al, ah
}

func fold128(al, ah, n, seed uint64) Uint128 {
	return Uint128{
		Hi: -avalanche3(al*prime64_1 + ah*prime64_4 + (n-seed)*prime64_2),
		Lo: avalanche3(al + ah),
	}
}
