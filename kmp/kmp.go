package kmp

// PrefixFunction computes the KMP failure table of pattern: pi[i] is
// the length of the longest proper prefix of pattern[0..i] that is also
// a suffix of pattern[0..i]. An empty pattern yields an empty table.
//
// Complexity: O(len(pattern)).
func PrefixFunction(pattern string) []int {
	pi := make([]int, len(pattern))
	for i := 1; i < len(pattern); i++ {
		// k is the running match length carried over from position i-1;
		// fall back through the table until the next byte extends it.
		k := pi[i-1]
		for k > 0 && pattern[i] != pattern[k] {
			k = pi[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		pi[i] = k
	}

	return pi
}

// FindAll returns the 0-based byte offsets of every occurrence of
// pattern in text, in increasing order, overlapping matches included.
// An empty pattern is never reported as matching, and a pattern longer
// than the text yields no occurrences; both return an empty result.
//
// Complexity: O(len(text) + len(pattern)).
func FindAll(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}

	pi := PrefixFunction(pattern)
	var res []int
	j := 0 // matched prefix length of pattern
	for i := 0; i < n; i++ {
		for j > 0 && text[i] != pattern[j] {
			j = pi[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == m {
			res = append(res, i+1-m)
			// Continue with the longest border so overlaps are found.
			j = pi[j-1]
		}
	}

	return res
}
