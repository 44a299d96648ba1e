package match

// Rolling hash parameters. The base covers the full byte range. The source
// material for this implementation used modulus 101; we widen it to a large
// prime to keep hash collisions rare on real text. Candidates that hash
// equal are still verified byte-by-byte, so the modulus only affects speed,
// never correctness.
const (
	hashBase    uint64 = 256
	hashModulus uint64 = 1_000_000_007
)

// polynomialHash evaluates the hash of s directly:
// (s[0]*base^(m-1) + s[1]*base^(m-2) + ... + s[m-1]) mod modulus.
func polynomialHash(s string, base, modulus uint64) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = (h*base + uint64(s[i])) % modulus
	}
	return h
}

// IndexRabinKarp returns the byte offset of the first occurrence of pattern
// in text using a polynomial rolling hash, or NotFound. Every hash-equal
// window is verified by direct comparison before being reported, so a hash
// collision can cost time but never produce a false positive.
func IndexRabinKarp(text, pattern string) int {
	return indexRabinKarp(text, pattern, hashBase, hashModulus)
}

// indexRabinKarp is the parameterized core. Tests exercise it with a tiny
// modulus to force collisions through the verification path.
func indexRabinKarp(text, pattern string, base, modulus uint64) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	patternHash := polynomialHash(pattern, base, modulus)
	windowHash := polynomialHash(text[:m], base, modulus)

	// Multiplier for the outgoing byte: base^(m-1) mod modulus.
	outMultiplier := uint64(1)
	for i := 0; i < m-1; i++ {
		outMultiplier = (outMultiplier * base) % modulus
	}

	for i := 0; ; i++ {
		if windowHash == patternHash && text[i:i+m] == pattern {
			return i
		}
		if i == n-m {
			return NotFound
		}
		// Roll: drop text[i], bring in text[i+m]. Adding modulus before
		// the subtraction keeps the intermediate value in range for
		// unsigned arithmetic.
		outgoing := (uint64(text[i]) * outMultiplier) % modulus
		windowHash = (windowHash + modulus - outgoing) % modulus
		windowHash = (windowHash*base + uint64(text[i+m])) % modulus
	}
}
