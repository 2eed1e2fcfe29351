package leitner

// PracticeRecord records a single answered card. Records are appended to the
// practice history and never modified.
type PracticeRecord struct {
	Day            int              `json:"day"`
	Card           Flashcard        `json:"card"`
	Difficulty     AnswerDifficulty `json:"difficulty"`
	PreviousBucket int              `json:"previous_bucket"`
	NewBucket      int              `json:"new_bucket"`
}
