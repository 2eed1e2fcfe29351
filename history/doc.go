// Package history analyzes a Leitner practice log.
//
// It complements leitner.ComputeProgress, which only counts reviews per day,
// with per-card summaries and review counts per bucket. Bucket figures use
// the PreviousBucket stored in each record, i.e. the bucket the card occupied
// when it was answered.
//
// # Usage
//
//	perBucket := history.ReviewsPerBucket(records)
//	for _, s := range history.Summarize(records) {
//	    fmt.Println(s.Card.Front, s.Accuracy())
//	}
package history
