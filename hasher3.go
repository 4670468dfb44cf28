package xxh

import "hash"

// bufLen3 is the internal buffer of the streaming XXH3 state, four stripes.
const bufLen3 = 256

// Hasher3 is a streaming hasher for the XXH3 family. The same absorbed
// input yields the 64-bit digest through Sum64 and the 128-bit digest
// through Sum128, each bit-identical to its one-shot counterpart. The zero
// value is ready to use and hashes like Sum3; New3 configures seeded or
// secret-keyed hashing. Designed for stack allocation.
//
// Hasher3 implements hash.Hash64.
type Hasher3 struct {
	acc     [8]uint64
	buf     [bufLen3]byte
	custom  [secretDefaultSize]byte // derived secret, valid when kind == policySeeded
	ext     []byte                  // caller secret, valid when kind == policySecret
	seed    uint64
	total   uint64
	n       int // bytes buffered in buf
	stripes int // stripes folded since the last lane rekey
	kind    policyKind
}

var _ hash.Hash64 = (*Hasher3)(nil)

// New3 returns a Hasher3 that hashes with, and resets to, the given policy.
// It fails with ErrSecretTooShort if the policy carries a secret shorter
// than SecretSizeMin.
func New3(policy ResetPolicy) (*Hasher3, error) {
	var h Hasher3
	if err := h.ResetTo(policy); err != nil {
		return nil, err
	}
	return &h, nil
}

// Reset drops the absorbed input, keeping the hashing parameters.
func (h *Hasher3) Reset() {
	h.total = 0
	h.n = 0
	h.stripes = 0
}

// ResetTo drops the absorbed input and installs new hashing parameters.
// The hasher is left unchanged if the policy is rejected.
func (h *Hasher3) ResetTo(policy ResetPolicy) error {
	if policy.kind == policySecret && len(policy.secret) < SecretSizeMin {
		return ErrSecretTooShort
	}
	h.kind = policy.kind
	h.seed = policy.seed
	h.ext = nil
	switch policy.kind {
	case policySeeded:
		deriveSecret(&h.custom, policy.seed)
	case policySecret:
		h.ext = policy.secret
	}
	h.Reset()
	return nil
}

// secret returns the active secret view.
func (h *Hasher3) secret() []byte {
	switch h.kind {
	case policySeeded:
		return h.custom[:]
	case policySecret:
		return h.ext
	}
	return kSecret[:]
}

// Write absorbs p into the hasher. It always returns len(p), nil.
func (h *Hasher3) Write(p []byte) (int, error) {
	n := len(p)
	if n <= len(h.buf)-h.n {
		copy(h.buf[h.n:], p)
		h.n += n
		h.total += uint64(n)
		return n, nil
	}

	sec := h.secret()
	perBlock := (len(sec) - stripeLen) / secretConsumeRate
	if h.total <= uint64(len(h.buf)) {
		// First spill since reset, the lanes start fresh.
		h.acc = acc3Init
	}
	h.total += uint64(n)

	if h.n > 0 {
		// Top up the buffer and fold all four of its stripes.
		fill := len(h.buf) - h.n
		copy(h.buf[h.n:], p[:fill])
		p = p[fill:]
		consumeStripes(&h.acc, &h.stripes, perBlock, h.buf[:], len(h.buf)/stripeLen, sec)
		h.n = 0
	}

	if len(p) > len(h.buf) {
		// Fold straight from p, keeping at least one trailing byte out. The
		// digest rebuilds the final stripe from the buffer tail, so the last
		// stripe folded here must land there too.
		ns := (len(p) - 1) / stripeLen
		consumeStripes(&h.acc, &h.stripes, perBlock, p, ns, sec)
		copy(h.buf[len(h.buf)-stripeLen:], p[ns*stripeLen-stripeLen:])
		p = p[ns*stripeLen:]
	}

	copy(h.buf[:], p)
	h.n = len(p)
	return n, nil
}

// WriteString absorbs s into the hasher without copying it.
func (h *Hasher3) WriteString(s string) (int, error) {
	return h.Write(strview(s))
}

// consumeStripes folds nb stripes of b, advancing the per-block stripe
// count in soFar and rekeying the lanes at every block boundary.
func consumeStripes(acc *[8]uint64, soFar *int, perBlock int, b []byte, nb int, sec []byte) {
	secOff := *soFar * secretConsumeRate
	if nb >= perBlock-*soFar {
		// Crosses the block boundary, possibly more than once.
		run := perBlock - *soFar
		for {
			accumulateStripes(acc, b, sec[secOff:], run)
			scramble(acc, sec[len(sec)-stripeLen:])
			b = b[run*stripeLen:]
			nb -= run
			run = perBlock
			secOff = 0
			if nb < perBlock {
				break
			}
		}
		*soFar = 0
	}
	if nb > 0 {
		accumulateStripes(acc, b, sec[secOff:], nb)
		*soFar += nb
	}
}

// digestAccs folds whatever is still buffered into a copy of the lanes,
// leaving the hasher untouched. Only meaningful when total > midsizeMax.
func (h *Hasher3) digestAccs(sec []byte) [8]uint64 {
	acc := h.acc
	if h.total <= uint64(len(h.buf)) {
		// Nothing has spilled yet, the lanes were never started.
		acc = acc3Init
	}
	soFar := h.stripes
	perBlock := (len(sec) - stripeLen) / secretConsumeRate
	lastKey := sec[len(sec)-stripeLen-secretLastAccStart:]

	if h.n >= stripeLen {
		consumeStripes(&acc, &soFar, perBlock, h.buf[:], (h.n-1)/stripeLen, sec)
		accumulate512(&acc, h.buf[h.n-stripeLen:], lastKey)
		return acc
	}

	// Fewer than 64 bytes buffered. The final stripe borrows its head from
	// the tail of the previous stripe, still parked at the end of the
	// buffer.
	var last [stripeLen]byte
	head := stripeLen - h.n
	copy(last[:], h.buf[len(h.buf)-head:])
	copy(last[head:], h.buf[:h.n])
	accumulate512(&acc, last[:], lastKey)
	return acc
}

// Sum64 returns the 64-bit digest of the input absorbed so far.
// Does not modify the hasher state.
func (h *Hasher3) Sum64() uint64 {
	if h.total > midsizeMax {
		sec := h.secret()
		acc := h.digestAccs(sec)
		return mergeAccs(&acc, sec[secretMergeAccsStart:], h.total*prime64_1)
	}
	if h.kind == policySeeded {
		return Sum3Seeded(h.buf[:h.total], h.seed)
	}
	return hash3(h.buf[:h.total], 0, h.secret())
}

// Sum128 returns the 128-bit digest of the input absorbed so far.
// Does not modify the hasher state.
func (h *Hasher3) Sum128() Uint128 {
	if h.total > midsizeMax {
		sec := h.secret()
		acc := h.digestAccs(sec)
		return Uint128{
			Hi: mergeAccs(&acc, sec[len(sec)-64-secretMergeAccsStart:], ^(h.total * prime64_2)),
			Lo: mergeAccs(&acc, sec[secretMergeAccsStart:], h.total*prime64_1),
		}
	}
	if h.kind == policySeeded {
		return Sum128Seeded(h.buf[:h.total], h.seed)
	}
	return hash128(h.buf[:h.total], 0, h.secret())
}

// Sum appends the big-endian 64-bit digest to b and returns the result.
func (h *Hasher3) Sum(b []byte) []byte {
	s := h.Sum64()
	return append(b,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s),
	)
}

// Size returns 8, the Sum64 digest size in bytes.
func (h *Hasher3) Size() int { return 8 }

// BlockSize returns 64, the stripe size in bytes.
func (h *Hasher3) BlockSize() int { return 64 }
