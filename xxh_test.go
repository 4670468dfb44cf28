package xxh

// moby is the classic long-ish test sentence used by the reference vectors.
const moby = "Call me Ishmael. Some years ago--never mind how long precisely--" +
	"having little or no money in my purse, and nothing particular to " +
	"interest me on shore, I thought I would sail about a little and see " +
	"the watery part of the world."

// sanityBuffer reproduces the reference test fill: a 64-bit generator
// starting at 2654435761 emits its top byte, then multiplies by a fixed odd
// constant, once per output byte.
func sanityBuffer(n int) []byte {
	out := make([]byte, n)
	gen := uint64(2654435761)
	for i := range out {
		out[i] = byte(gen >> 56)
		gen *= 11400714785074694797
	}
	return out
}

// affineBytes returns n bytes of the sequence i*mul+add, a cheap
// deterministic fill for custom-secret tests.
func affineBytes(n int, mul, add byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)*mul + add
	}
	return out
}
