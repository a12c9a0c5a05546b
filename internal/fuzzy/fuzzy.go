// Package fuzzy implements approximate substring matching with
// normalized scores, used by the search engine to rank note names and
// content previews.
//
// Matching is case-insensitive and location-agnostic: a hit scores the
// same wherever it occurs in the text. Scores live in [0,1] where 0 is a
// perfect match; the score of an approximate hit is its error ratio
// (edit errors divided by pattern length).
package fuzzy

import "strings"

// Threshold is the maximum error ratio still considered a match. 0.4
// tolerates moderate typos without matching unrelated text.
const Threshold = 0.4

// maxPatternLen is the bitap word size; longer patterns are matched on
// their first 32 bytes, which is already far stricter than the threshold
// allows to matter.
const maxPatternLen = 32

// Match reports whether pattern approximately occurs within text, and the
// match score. An exact substring hit scores 0; approximate hits score
// their error ratio. No match within Threshold returns (0, false).
func Match(pattern, text string) (float64, bool) {
	p := strings.ToLower(strings.TrimSpace(pattern))
	if p == "" || text == "" {
		return 0, false
	}
	t := strings.ToLower(text)

	if strings.Contains(t, p) {
		return 0, true
	}

	if len(p) > maxPatternLen {
		p = p[:maxPatternLen]
		if strings.Contains(t, p) {
			return 0, true
		}
	}

	errs, ok := bitap(p, t, int(Threshold*float64(len(p))))
	if !ok {
		return 0, false
	}
	return float64(errs) / float64(len(p)), true
}

// bitap runs the Wu-Manber approximate matcher, returning the smallest
// error count (<= maxErrors) of any occurrence of p inside t.
func bitap(p, t string, maxErrors int) (int, bool) {
	if maxErrors <= 0 {
		// Exact matching was already tried via strings.Contains.
		return 0, false
	}

	m := len(p)
	var masks [256]uint64
	for i := 0; i < m; i++ {
		masks[p[i]] |= 1 << uint(i)
	}
	done := uint64(1) << uint(m-1)

	r := make([]uint64, maxErrors+1)
	best := -1

	for i := 0; i < len(t); i++ {
		charMask := masks[t[i]]

		old := r[0]
		r[0] = ((r[0] << 1) | 1) & charMask
		for d := 1; d <= maxErrors; d++ {
			tmp := r[d]
			// match | substitution | insertion | deletion
			r[d] = (((r[d] << 1) | 1) & charMask) | old | ((old | r[d-1]) << 1) | 1
			old = tmp
		}

		for d := 0; d <= maxErrors; d++ {
			if r[d]&done != 0 {
				if best < 0 || d < best {
					best = d
				}
				break
			}
		}
		if best == 1 {
			// Exact hits are handled by the caller; one error is the
			// best an approximate pass can do.
			break
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}
