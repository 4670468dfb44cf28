package xxh

import "math/bits"

const (
	primeMX1 uint64 = 0x165667919E3779F9
	primeMX2 uint64 = 0x9FB21C651E98DF25
)

const (
	stripeLen         = 64
	secretConsumeRate = 8
	midsizeMax        = 240
	secretDefaultSize = 192

	// Secret offsets consumed by the finalization steps, counted from the
	// start or the end of the secret.
	secretMergeAccsStart = 11
	secretLastAccStart   = 7

	midsizeStartOffset = 3
	midsizeLastOffset  = 17
)

// kSecret is the default XXH3 secret, 192 bytes of pi-derived entropy.
var kSecret = [secretDefaultSize]byte{
	0xb8, 0xfe, 0x6c, 0x39, 0x23, 0xa4, 0x4b, 0xbe, 0x7c, 0x01, 0x81, 0x2c,
	0xf7, 0x21, 0xad, 0x1c, 0xde, 0xd4, 0x6d, 0xe9, 0x83, 0x90, 0x97, 0xdb,
	0x72, 0x40, 0xa4, 0xa4, 0xb7, 0xb3, 0x67, 0x1f, 0xcb, 0x79, 0xe6, 0x4e,
	0xcc, 0xc0, 0xe5, 0x78, 0x82, 0x5a, 0xd0, 0x7d, 0xcc, 0xff, 0x72, 0x21,
	0xb8, 0x08, 0x46, 0x74, 0xf7, 0x43, 0x24, 0x8e, 0xe0, 0x35, 0x90, 0xe6,
	0x81, 0x3a, 0x26, 0x4c, 0x3c, 0x28, 0x52, 0xbb, 0x91, 0xc3, 0x00, 0xcb,
	0x88, 0xd0, 0x65, 0x8b, 0x1b, 0x53, 0x2e, 0xa3, 0x71, 0x64, 0x48, 0x97,
	0xa2, 0x0d, 0xf9, 0x4e, 0x38, 0x19, 0xef, 0x46, 0xa9, 0xde, 0xac, 0xd8,
	0xa8, 0xfa, 0x76, 0x3f, 0xe3, 0x9c, 0x34, 0x3f, 0xf9, 0xdc, 0xbb, 0xc7,
	0xc7, 0x0b, 0x4f, 0x1d, 0x8a, 0x51, 0xe0, 0x4b, 0xcd, 0xb4, 0x59, 0x31,
	0xc8, 0x9f, 0x7e, 0xc9, 0xd9, 0x78, 0x73, 0x64, 0xea, 0xc5, 0xac, 0x83,
	0x34, 0xd3, 0xeb, 0xc3, 0xc5, 0x81, 0xa0, 0xff, 0xfa, 0x13, 0x63, 0xeb,
	0x17, 0x0d, 0xdd, 0x51, 0xb7, 0xf0, 0xda, 0x49, 0xd3, 0x16, 0x55, 0x26,
	0x29, 0xd4, 0x68, 0x9e, 0x2b, 0x16, 0xbe, 0x58, 0x7d, 0x47, 0xa1, 0xfc,
	0x8f, 0xf8, 0xb8, 0xd1, 0x7a, 0xd0, 0x31, 0xce, 0x45, 0xcb, 0x3a, 0x8f,
	0x95, 0x16, 0x04, 0x28, 0xaf, 0xd7, 0xfb, 0xca, 0xbb, 0x4b, 0x40, 0x7e,
}

// acc3Init seeds the eight accumulator lanes of the long-input path.
var acc3Init = [8]uint64{
	uint64(prime32_3), prime64_1, prime64_2, prime64_3,
	prime64_4, uint64(prime32_2), prime64_5, uint64(prime32_1),
}

// Sum3 computes the 64-bit XXH3 hash of b.
// Zero heap allocations.
func Sum3(b []byte) uint64 {
	return hash3(b, 0, kSecret[:])
}

// Sum3String computes the 64-bit XXH3 hash of s without copying it.
func Sum3String(s string) uint64 {
	return hash3(strview(s), 0, kSecret[:])
}

// Sum3Seeded computes the 64-bit XXH3 hash of b with the given seed.
// Seed 0 is equivalent to Sum3.
func Sum3Seeded(b []byte, seed uint64) uint64 {
	if seed == 0 {
		return hash3(b, 0, kSecret[:])
	}
	if len(b) > midsizeMax {
		var sec [secretDefaultSize]byte
		deriveSecret(&sec, seed)
		return hash3(b, seed, sec[:])
	}
	return hash3(b, seed, kSecret[:])
}

// Sum3WithSecret computes the 64-bit XXH3 hash of b keyed by a custom
// secret. The secret is used verbatim and must carry at least SecretSizeMin
// bytes, otherwise ErrSecretTooShort is returned.
func Sum3WithSecret(b, secret []byte) (uint64, error) {
	if len(secret) < SecretSizeMin {
		return 0, ErrSecretTooShort
	}
	return hash3(b, 0, secret), nil
}

// hash3 dispatches on the input length. Inputs up to midsizeMax bytes are
// keyed directly by seed and secret; longer inputs use the striped
// accumulator and ignore the seed (callers pass a seed-derived secret
// instead).
func hash3(b []byte, seed uint64, sec []byte) uint64 {
	n := len(b)
	switch {
	case n <= 16:
		return hash3Len0to16(b, seed, sec)
	case n <= 128:
		return hash3Len17to128(b, seed, sec)
	case n <= midsizeMax:
		return hash3Len129to240(b, seed, sec)
	}
	var acc [8]uint64
	hash3LongAccs(&acc, b, sec)
	return mergeAccs(&acc, sec[secretMergeAccsStart:], uint64(n)*prime64_1)
}

func hash3Len0to16(b []byte, seed uint64, sec []byte) uint64 {
	n := len(b)
	switch {
	case n > 8:
		lo := le64(b) ^ ((le64(sec[24:]) ^ le64(sec[32:])) + seed)
		hi := le64(b[n-8:]) ^ ((le64(sec[40:]) ^ le64(sec[48:])) - seed)
		return avalanche3(uint64(n) + bits.ReverseBytes64(lo) + hi + mulFold64(lo, hi))
	case n >= 4:
		seed ^= uint64(bits.ReverseBytes32(uint32(seed))) << 32
		in := uint64(le32(b[n-4:])) | uint64(le32(b))<<32
		return rrmxmx(in^((le64(sec[8:])^le64(sec[16:]))-seed), uint64(n))
	case n > 0:
		c := uint32(b[0])<<16 | uint32(b[n>>1])<<24 | uint32(b[n-1]) | uint32(n)<<8
		return avalanche64(uint64(c) ^ (uint64(le32(sec)^le32(sec[4:])) + seed))
	}
	return avalanche64(seed ^ le64(sec[56:]) ^ le64(sec[64:]))
}

func hash3Len17to128(b []byte, seed uint64, sec []byte) uint64 {
	n := len(b)
	acc := uint64(n) * prime64_1
	if n > 32 {
		if n > 64 {
			if n > 96 {
				acc += mix16(b[48:], sec[96:], seed)
				acc += mix16(b[n-64:], sec[112:], seed)
			}
			acc += mix16(b[32:], sec[64:], seed)
			acc += mix16(b[n-48:], sec[80:], seed)
		}
		acc += mix16(b[16:], sec[32:], seed)
		acc += mix16(b[n-32:], sec[48:], seed)
	}
	acc += mix16(b, sec, seed)
	acc += mix16(b[n-16:], sec[16:], seed)
	return avalanche3(acc)
}

func hash3Len129to240(b []byte, seed uint64, sec []byte) uint64 {
	n := len(b)
	acc := uint64(n) * prime64_1
	for i := 0; i < 8; i++ {
		acc += mix16(b[16*i:], sec[16*i:], seed)
	}
	acc = avalanche3(acc)
	for i := 8; i < n/16; i++ {
		acc += mix16(b[16*i:], sec[16*(i-8)+midsizeStartOffset:], seed)
	}
	acc += mix16(b[n-16:], sec[136-midsizeLastOffset:], seed)
	return avalanche3(acc)
}

// hash3LongAccs runs the striped accumulator over b, which must be longer
// than midsizeMax bytes, leaving the eight merged lanes in acc.
func hash3LongAccs(acc *[8]uint64, b, sec []byte) {
	*acc = acc3Init
	stripesPerBlock := (len(sec) - stripeLen) / secretConsumeRate
	blockLen := stripeLen * stripesPerBlock

	n := len(b)
	nbBlocks := (n - 1) / blockLen
	for i := 0; i < nbBlocks; i++ {
		accumulateStripes(acc, b[i*blockLen:], sec, stripesPerBlock)
		scramble(acc, sec[len(sec)-stripeLen:])
	}

	// The last partial block keeps at least one byte for the final stripe,
	// which overlaps the block and is keyed near the end of the secret.
	rest := n - nbBlocks*blockLen
	accumulateStripes(acc, b[nbBlocks*blockLen:], sec, (rest-1)/stripeLen)
	accumulate512(acc, b[n-stripeLen:], sec[len(sec)-stripeLen-secretLastAccStart:])
}

// accumulate512 folds one 64-byte stripe into the lanes. Lane pairs swap
// their additive halves, which keeps full entropy across lanes.
func accumulate512(acc *[8]uint64, b, sec []byte) {
	for i := 0; i < 8; i++ {
		dv := le64(b[8*i:])
		dk := dv ^ le64(sec[8*i:])
		acc[i^1] += dv
		acc[i] += uint64(uint32(dk)) * (dk >> 32)
	}
}

// accumulateStripes folds n consecutive stripes of b, advancing the secret
// by secretConsumeRate bytes per stripe.
func accumulateStripes(acc *[8]uint64, b, sec []byte, n int) {
	for s := 0; s < n; s++ {
		accumulate512(acc, b[s*stripeLen:], sec[s*secretConsumeRate:])
	}
}

// scramble rekeys the lanes at the end of every block.
func scramble(acc *[8]uint64, sec []byte) {
	for i := 0; i < 8; i++ {
		a := acc[i]
		a ^= a >> 47
		a ^= le64(sec[8*i:])
		a *= uint64(prime32_1)
		acc[i] = a
	}
}

// mergeAccs folds the eight lanes pairwise into one 64-bit digest.
func mergeAccs(acc *[8]uint64, sec []byte, start uint64) uint64 {
	r := start
	for i := 0; i < 4; i++ {
		r += mulFold64(acc[2*i]^le64(sec[16*i:]), acc[2*i+1]^le64(sec[16*i+8:]))
	}
	return avalanche3(r)
}

// mix16 folds 16 bytes of input keyed by 16 bytes of secret.
func mix16(b, sec []byte, seed uint64) uint64 {
	return mulFold64(
		le64(b)^(le64(sec)+seed),
		le64(b[8:])^(le64(sec[8:])-seed),
	)
}

// mulFold64 multiplies x by y into 128 bits and folds the halves together.
func mulFold64(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return hi ^ lo
}

func avalanche3(x uint64) uint64 {
	x ^= x >> 37
	x *= primeMX1
	x ^= x >> 32
	return x
}

// rrmxmx is the stronger finalizer of the 4-to-8 byte path.
func rrmxmx(x, n uint64) uint64 {
	x ^= bits.RotateLeft64(x, 49) ^ bits.RotateLeft64(x, 24)
	x *= primeMX2
	x ^= (x >> 35) + n
	x *= primeMX2
	x ^= x >> 28
	return x
}

// deriveSecret fills dst with the default secret rekeyed by seed, one
// add/subtract pair per 16 bytes.
func deriveSecret(dst *[secretDefaultSize]byte, seed uint64) {
	for i := 0; i < secretDefaultSize; i += 16 {
		putLE64(dst[i:], le64(kSecret[i:])+seed)
		putLE64(dst[i+8:], le64(kSecret[i+8:])-seed)
	}
}
