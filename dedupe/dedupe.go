// Package dedupe tags near-duplicate records by word overlap.
package dedupe

import "strings"

// DefaultThreshold is the overlap ratio at or above which two messages are
// treated as near-duplicates.
const DefaultThreshold = 0.8

// Similarity returns |words(a) ∩ words(b)| / |words(a)|, where words is the
// whitespace-split token set. The ratio is normalized by the first argument's
// vocabulary, so Similarity(a, b) and Similarity(b, a) can differ. Missing
// text on either side, or a token-less first text, scores 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	wordsA := tokenSet(a)
	if len(wordsA) == 0 {
		return 0
	}
	wordsB := tokenSet(b)

	common := 0
	for w := range wordsA {
		if wordsB[w] {
			common++
		}
	}
	return float64(common) / float64(len(wordsA))
}

func tokenSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// Tag clusters messages greedily and returns one canonical flag per input:
// true for the canonical member of a cluster (and for records matching
// nothing), false for the other cluster members.
//
// Seeds are taken in input order, which makes the result deterministic. Each
// seed is compared against every remaining record; records at or above the
// threshold join its cluster and leave the pool, and the seed leaves the pool
// whether or not it matched anything. O(n²) in the number of records.
func Tag(messages []string, threshold float64) []bool {
	canonical := make([]bool, len(messages))
	for i := range canonical {
		canonical[i] = true
	}

	pending := make([]bool, len(messages))
	for i := range pending {
		pending[i] = true
	}

	for seed := 0; seed < len(messages); seed++ {
		if !pending[seed] {
			continue
		}
		pending[seed] = false

		for other := seed + 1; other < len(messages); other++ {
			if !pending[other] {
				continue
			}
			if Similarity(messages[seed], messages[other]) >= threshold {
				canonical[other] = false
				pending[other] = false
			}
		}
	}
	return canonical
}
