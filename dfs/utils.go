// Package dfs helpers for cycle canonicalization.
package dfs

import (
	"strconv"
	"strings"
)

// Compare lexicographically compares two id sequences; a shorter prefix sorts first.
// Time Complexity: O(n).
func Compare(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return len(a) - len(b)
}

// JoinSig concatenates ids with commas, producing a single string signature.
func JoinSig(c []int) string {
	var b strings.Builder
	for i, id := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice of length len(s) in O(n) time.
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// 4. After scanning, extract the rotation starting at index k.
func MinimalRotation(s []int) []int {
	n := len(s)
	doubled := make([]int, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]int, n)
	copy(res, doubled[k:k+n])

	return res
}
