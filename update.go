package leitner

import "fmt"

// Update moves card according to the answer difficulty and returns the new
// bucket state. The card is removed from the lowest bucket holding it; a card
// found in no bucket is new and counts as bucket 0. It is then placed in
// bucket 0 (Wrong), one bucket up (Hard) or two buckets up (Easy), capped at
// MaxBucket.
//
// buckets and its sets are never modified. The returned map shares the sets
// that were not touched by the move.
func Update(buckets BucketMap, card Flashcard, difficulty AnswerDifficulty) (BucketMap, error) {
	next, _, _, err := move(buckets, card, difficulty)
	return next, err
}

// Review applies Update and returns the practice record describing the move.
func Review(buckets BucketMap, card Flashcard, difficulty AnswerDifficulty, day int) (BucketMap, PracticeRecord, error) {
	if day < 0 {
		return nil, PracticeRecord{}, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	next, from, to, err := move(buckets, card, difficulty)
	if err != nil {
		return nil, PracticeRecord{}, err
	}
	rec := PracticeRecord{
		Day:            day,
		Card:           card.clone(),
		Difficulty:     difficulty,
		PreviousBucket: from,
		NewBucket:      to,
	}
	return next, rec, nil
}

func move(buckets BucketMap, card Flashcard, difficulty AnswerDifficulty) (BucketMap, int, int, error) {
	if !difficulty.IsValid() {
		return nil, 0, 0, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(difficulty))
	}

	next := make(BucketMap, len(buckets)+1)
	for b, set := range buckets {
		next[b] = set
	}

	from, found := buckets.BucketOf(card)
	if found {
		src := next[from].Clone()
		src.Remove(card)
		next[from] = src
	}

	to, err := nextBucket(from, difficulty)
	if err != nil {
		return nil, 0, 0, err
	}

	var dst CardSet
	if to == from && found {
		dst = next[to]
	} else {
		dst = next[to].Clone()
	}
	dst.Add(card)
	next[to] = dst

	return next, from, to, nil
}
