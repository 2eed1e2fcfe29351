package leitner

import "fmt"

// SelectDue returns every card in a bucket due on day: bucket i is due iff
// day mod 2^i == 0, so bucket 0 is due daily, bucket 1 every second day, and
// so on. Duplicate cards across buckets appear once. The input is not modified.
func SelectDue(dense []CardSet, day int) (CardSet, error) {
	if day < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	due := CardSet{}
	for i, set := range dense {
		if !isDue(i, day) {
			continue
		}
		for _, c := range set {
			due.Add(c)
		}
	}
	return due, nil
}

// DueCards converts buckets to the dense form and returns the cards due on
// day, sorted by front, then back.
func DueCards(buckets BucketMap, day int) ([]Flashcard, error) {
	due, err := SelectDue(ToDenseArray(buckets), day)
	if err != nil {
		return nil, err
	}
	return due.Cards(), nil
}
