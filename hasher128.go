package xxh

import "hash"

// Hasher128 is a Hasher3 presented through the hash.Hash interface with
// 16-byte digests. The zero value is ready to use and hashes like Sum128.
type Hasher128 struct {
	h Hasher3
}

var _ hash.Hash = (*Hasher128)(nil)

// New128 returns a Hasher128 that hashes with, and resets to, the given
// policy. It fails with ErrSecretTooShort if the policy carries a secret
// shorter than SecretSizeMin.
func New128(policy ResetPolicy) (*Hasher128, error) {
	var h Hasher128
	if err := h.h.ResetTo(policy); err != nil {
		return nil, err
	}
	return &h, nil
}

// Reset drops the absorbed input, keeping the hashing parameters.
func (h *Hasher128) Reset() {
	h.h.Reset()
}

// ResetTo drops the absorbed input and installs new hashing parameters.
// The hasher is left unchanged if the policy is rejected.
func (h *Hasher128) ResetTo(policy ResetPolicy) error {
	return h.h.ResetTo(policy)
}

// Write absorbs p into the hasher. It always returns len(p), nil.
func (h *Hasher128) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// WriteString absorbs s into the hasher without copying it.
func (h *Hasher128) WriteString(s string) (int, error) {
	return h.h.WriteString(s)
}

// Sum128 returns the 128-bit digest of the input absorbed so far.
// Does not modify the hasher state.
func (h *Hasher128) Sum128() Uint128 {
	return h.h.Sum128()
}

// Sum appends the canonical big-endian digest to b and returns the result.
func (h *Hasher128) Sum(b []byte) []byte {
	sum := h.h.Sum128().Bytes()
	return append(b, sum[:]...)
}

// Size returns 16, the digest size in bytes.
func (h *Hasher128) Size() int { return 16 }

// BlockSize returns 64, the stripe size in bytes.
func (h *Hasher128) BlockSize() int { return 64 }
