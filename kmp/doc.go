// Package kmp provides the Knuth–Morris–Pratt prefix function and
// linear-time substring search. Both functions are stateless and pure:
// they allocate their results and keep nothing between calls.
//
// What
//
//   - PrefixFunction(pattern) returns pi where pi[i] is the length of
//     the longest proper prefix of pattern[0..i] that is also a suffix
//     of pattern[0..i].
//   - FindAll(text, pattern) returns every 0-based start index where
//     pattern occurs in text, overlapping occurrences included.
//
// Conventions
//
//   - An empty pattern never matches: FindAll(text, "") is empty, and
//     PrefixFunction("") is an empty table.
//   - A pattern longer than the text yields no occurrences.
//   - Matching is byte-wise over the raw bytes of the strings; indices
//     are byte offsets (multi-byte UTF-8 sequences match as their byte
//     runs).
//
// Complexity (n = len(text), m = len(pattern))
//
//   - PrefixFunction: O(m)
//   - FindAll: O(n + m), no backtracking in the text
//
// See example_test.go for usage.
package kmp
