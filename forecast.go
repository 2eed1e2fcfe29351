package leitner

import "fmt"

// Forecast returns the number of cards due on each of the days
// from, from+1, ..., from+days-1, assuming no further answers are recorded.
func Forecast(buckets BucketMap, from, days int) ([]int, error) {
	if from < 0 {
		return nil, fmt.Errorf("%w: from %d", ErrInvalidDay, from)
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: days %d", ErrInvalidDay, days)
	}

	dense := ToDenseArray(buckets)
	sizes := make([]int, len(dense))
	for i, set := range dense {
		sizes[i] = set.Len()
	}

	// A card stored in two buckets is counted once per day, as SelectDue does.
	if hasDuplicates(dense) {
		out := make([]int, days)
		for d := range days {
			due, err := SelectDue(dense, from+d)
			if err != nil {
				return nil, err
			}
			out[d] = due.Len()
		}
		return out, nil
	}

	out := make([]int, days)
	for d := range days {
		day := from + d
		for b, n := range sizes {
			if n > 0 && isDue(b, day) {
				out[d] += n
			}
		}
	}
	return out, nil
}

func hasDuplicates(dense []CardSet) bool {
	seen := make(map[CardKey]struct{})
	for _, set := range dense {
		for k := range set {
			if _, ok := seen[k]; ok {
				return true
			}
			seen[k] = struct{}{}
		}
	}
	return false
}
