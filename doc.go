// Package leitner implements a Modified-Leitner spaced repetition scheduler.
//
// Cards live in numbered buckets. Bucket i is reviewed every 2^i days, and a
// review moves the card down to bucket 0 (Wrong) or up by one (Hard) or two
// (Easy) buckets, never past MaxBucket. All functions are pure: they take the
// caller's bucket state and return new values without mutating it.
//
// Basic usage:
//
//	buckets := leitner.BucketMap{}
//	card := leitner.NewFlashcard("Algorithm", "A finite sequence of steps")
//	buckets, rec, err := leitner.Review(buckets, card, leitner.Easy, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	due, _ := leitner.DueCards(buckets, 4)
//	stats := leitner.ComputeProgress(buckets, []leitner.PracticeRecord{rec})
//
// The history subpackage derives per-card and per-bucket summaries from a
// practice log.
package leitner
