package xxh

import "errors"

// SecretSizeMin is the smallest custom secret the XXH3 functions accept, in
// bytes.
const SecretSizeMin = 192

// ErrSecretTooShort is returned when a custom secret carries fewer than
// SecretSizeMin bytes.
var ErrSecretTooShort = errors.New("xxh: secret shorter than SecretSizeMin")

type policyKind uint8

const (
	policyDefault policyKind = iota
	policySeeded
	policySecret
)

// ResetPolicy selects the hashing parameters a Hasher3 or Hasher128 returns
// to on Reset: the built-in secret, a seed, or a caller-supplied secret.
// The zero value is Default().
type ResetPolicy struct {
	kind   policyKind
	seed   uint64
	secret []byte
}

// Default hashes with the built-in secret and no seed.
func Default() ResetPolicy {
	return ResetPolicy{}
}

// Seeded hashes with parameters derived from seed. Seeded(0) is Default().
func Seeded(seed uint64) ResetPolicy {
	if seed == 0 {
		return ResetPolicy{}
	}
	return ResetPolicy{kind: policySeeded, seed: seed}
}

// SecretBytes hashes keyed by the caller's secret, used verbatim. The hasher
// keeps a reference to the slice, so its contents must not change while in
// use. Secrets shorter than SecretSizeMin are rejected when the policy is
// applied.
func SecretBytes(secret []byte) ResetPolicy {
	return ResetPolicy{kind: policySecret, secret: secret}
}
