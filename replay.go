package leitner

import (
	"cmp"
	"fmt"
	"slices"
)

// Replay rebuilds bucket state from a practice log, starting from empty
// buckets and applying Update for every record in day order. Records of the
// same day keep their relative order. The recorded buckets are not trusted;
// they are recomputed.
func Replay(history []PracticeRecord) (BucketMap, error) {
	ordered := slices.Clone(history)
	slices.SortStableFunc(ordered, func(a, b PracticeRecord) int {
		return cmp.Compare(a.Day, b.Day)
	})
	return ReplayInOrder(ordered)
}

// ReplayInOrder is Replay without the day sort: records are applied in the
// order given, which is the order answers were recorded in a log that
// accepts explicit days.
func ReplayInOrder(history []PracticeRecord) (BucketMap, error) {
	buckets := BucketMap{}
	for i, rec := range history {
		next, err := Update(buckets, rec.Card, rec.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("record %d (day %d, %v): %w", i, rec.Day, rec.Card.Key(), err)
		}
		buckets = next
	}
	return buckets, nil
}
