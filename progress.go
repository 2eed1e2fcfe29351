package leitner

// ProgressStats summarizes the bucket state and the practice history.
type ProgressStats struct {
	TotalCards         int         `json:"total_cards"`
	BucketDistribution map[int]int `json:"bucket_distribution"`
	AccuracyRate       float64     `json:"accuracy_rate"`  // percent of correct answers, 0 with no history.
	AverageBucket      float64     `json:"average_bucket"` // weighted by occupancy, 0 with no cards.
	PracticeHistory    map[int]int `json:"practice_history"`
}

// ComputeProgress aggregates buckets and history. The two inputs are scanned
// independently: bucket figures come from the current state, accuracy and
// the per-day practice counts from the history.
func ComputeProgress(buckets BucketMap, history []PracticeRecord) ProgressStats {
	stats := ProgressStats{
		BucketDistribution: make(map[int]int, len(buckets)),
		PracticeHistory:    make(map[int]int),
	}

	weighted := 0
	for b, set := range buckets {
		n := set.Len()
		stats.BucketDistribution[b] = n
		stats.TotalCards += n
		weighted += b * n
	}
	if stats.TotalCards > 0 {
		stats.AverageBucket = float64(weighted) / float64(stats.TotalCards)
	}

	correct := 0
	for _, rec := range history {
		stats.PracticeHistory[rec.Day]++
		if rec.Difficulty.IsCorrect() {
			correct++
		}
	}
	if len(history) > 0 {
		stats.AccuracyRate = float64(correct) / float64(len(history)) * 100
	}

	return stats
}
