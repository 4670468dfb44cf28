// Package xxh implements the xxHash family of fast non-cryptographic hash
// algorithms: XXH32, XXH64 and the XXH3 variants with 64 and 128 bit digests.
//
// Every algorithm comes in a one-shot form (Sum32, Sum64, Sum3, Sum128) and a
// streaming form (Hasher64, Hasher3, Hasher128) that produces bit-identical
// digests no matter how the input is split across writes. The implementation
// is portable scalar Go and matches the published reference vectors on every
// platform.
//
// XXH3 additionally supports seeded hashing and caller-supplied secrets, one
// shot through Sum3Seeded/Sum3WithSecret and their 128-bit counterparts, and
// streaming through a ResetPolicy. The streaming hashers are plain structs
// designed for stack allocation; their zero value hashes with the default
// parameters without any setup call.
//
// The one-shot functions are pure and safe for unlimited concurrent callers.
// A streaming hasher belongs to one goroutine at a time.
//
// The algorithms are described at https://xxhash.com.
package xxh

import "unsafe"

// Uint128 is a 128-bit XXH3 digest. Hi carries the most significant half.
type Uint128 struct {
	Hi, Lo uint64
}

// Bytes returns the canonical big-endian encoding of u, high half first.
func (u Uint128) Bytes() [16]byte {
	return [16]byte{
		byte(u.Hi >> 56), byte(u.Hi >> 48), byte(u.Hi >> 40), byte(u.Hi >> 32),
		byte(u.Hi >> 24), byte(u.Hi >> 16), byte(u.Hi >> 8), byte(u.Hi),
		byte(u.Lo >> 56), byte(u.Lo >> 48), byte(u.Lo >> 40), byte(u.Lo >> 32),
		byte(u.Lo >> 24), byte(u.Lo >> 16), byte(u.Lo >> 8), byte(u.Lo),
	}
}

// strview reinterprets s as a byte slice without copying. The result must
// never be written to.
func strview(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// le32 reads a little-endian uint32 from at least 4 bytes.
func le32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// putLE64 stores v little-endian into the first 8 bytes of b.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
