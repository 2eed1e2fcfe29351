package leitner

import "fmt"

// MaxBucket is the highest bucket a card can reach. Further correct answers
// keep it there.
const MaxBucket = 4

// maxShift bounds 1<<bucket so the interval never overflows an int.
const maxShift = 62

// Interval returns the review interval of a bucket in days: 2^bucket.
// Negative buckets have no interval and return 0.
func Interval(bucket int) int {
	if bucket < 0 {
		return 0
	}
	if bucket > maxShift {
		bucket = maxShift
	}
	return 1 << bucket
}

// isDue reports whether cards in bucket are reviewed on day.
// bucket i is due iff day mod 2^i == 0.
func isDue(bucket, day int) bool {
	if bucket < 0 || day < 0 {
		return false
	}
	if bucket > maxShift {
		return day == 0
	}
	return day%Interval(bucket) == 0
}

// nextBucket computes the target bucket for a card currently in bucket cur.
//
//	Wrong → 0
//	Hard  → min(cur+1, MaxBucket)
//	Easy  → min(cur+2, MaxBucket)
func nextBucket(cur int, d AnswerDifficulty) (int, error) {
	switch d {
	case Wrong:
		return 0, nil
	case Hard:
		return min(cur+1, MaxBucket), nil
	case Easy:
		return min(cur+2, MaxBucket), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
}
