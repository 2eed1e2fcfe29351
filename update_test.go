package leitner

import (
	"errors"
	"testing"
)

func mustUpdate(t *testing.T, buckets BucketMap, card Flashcard, d AnswerDifficulty) BucketMap {
	t.Helper()
	next, err := Update(buckets, card, d)
	if err != nil {
		t.Fatalf("Update(%v, %v): %v", card.Key(), d, err)
	}
	return next
}

func bucketOf(t *testing.T, m BucketMap, card Flashcard) int {
	t.Helper()
	b, ok := m.BucketOf(card)
	if !ok {
		t.Fatalf("%v not found in any bucket", card.Key())
	}
	return b
}

func TestUpdateNewCardEasyProgression(t *testing.T) {
	m := BucketMap{}
	m = mustUpdate(t, m, cardA, Easy)
	if b := bucketOf(t, m, cardA); b != 2 {
		t.Errorf("after first Easy: bucket %d, want 2", b)
	}
	m = mustUpdate(t, m, cardA, Easy)
	if b := bucketOf(t, m, cardA); b != 4 {
		t.Errorf("after second Easy: bucket %d, want 4", b)
	}
	m = mustUpdate(t, m, cardA, Easy)
	if b := bucketOf(t, m, cardA); b != 4 {
		t.Errorf("after third Easy: bucket %d, want 4", b)
	}
	if m.TotalCards() != 1 {
		t.Errorf("TotalCards() = %d, want 1", m.TotalCards())
	}
}

func TestUpdateNewCardHardAndWrong(t *testing.T) {
	m := mustUpdate(t, BucketMap{}, cardA, Hard)
	if b := bucketOf(t, m, cardA); b != 1 {
		t.Errorf("new card Hard: bucket %d, want 1", b)
	}
	m = mustUpdate(t, BucketMap{}, cardB, Wrong)
	if b := bucketOf(t, m, cardB); b != 0 {
		t.Errorf("new card Wrong: bucket %d, want 0", b)
	}
}

func TestUpdateWrongResets(t *testing.T) {
	m := BucketMap{3: NewCardSet(cardA)}
	m = mustUpdate(t, m, cardA, Wrong)
	if b := bucketOf(t, m, cardA); b != 0 {
		t.Errorf("bucket %d, want 0", b)
	}
	if m[3].Len() != 0 {
		t.Errorf("bucket 3 still holds %d cards", m[3].Len())
	}
}

func TestUpdateNeverExceedsMaxBucket(t *testing.T) {
	for start := 0; start <= MaxBucket; start++ {
		for _, d := range []AnswerDifficulty{Hard, Easy} {
			m := BucketMap{start: NewCardSet(cardA)}
			for range 10 {
				m = mustUpdate(t, m, cardA, d)
				if b := bucketOf(t, m, cardA); b > MaxBucket {
					t.Fatalf("start %d, %v: bucket %d exceeds %d", start, d, b, MaxBucket)
				}
			}
			if b := bucketOf(t, m, cardA); b != MaxBucket {
				t.Errorf("start %d, repeated %v: bucket %d, want %d", start, d, b, MaxBucket)
			}
		}
	}
}

func TestUpdateConservesCardCount(t *testing.T) {
	m := BucketMap{
		0: NewCardSet(cardA, cardB),
		2: NewCardSet(cardC),
	}
	moves := []struct {
		card Flashcard
		d    AnswerDifficulty
	}{
		{cardA, Easy}, {cardC, Wrong}, {cardB, Hard}, {cardA, Hard}, {cardC, Easy},
	}
	for _, mv := range moves {
		m = mustUpdate(t, m, mv.card, mv.d)
		if m.TotalCards() != 3 {
			t.Fatalf("after %v %v: TotalCards() = %d, want 3", mv.card.Key(), mv.d, m.TotalCards())
		}
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	bucket0 := NewCardSet(cardA, cardB)
	bucket1 := NewCardSet(cardC)
	in := BucketMap{0: bucket0, 1: bucket1}

	out := mustUpdate(t, in, cardA, Hard)

	if len(in) != 2 {
		t.Errorf("input map has %d buckets, want 2", len(in))
	}
	if !bucket0.Contains(cardA) || bucket0.Len() != 2 {
		t.Error("source set of the input was mutated")
	}
	if bucket1.Contains(cardA) || bucket1.Len() != 1 {
		t.Error("target set of the input was mutated")
	}
	if !out[1].Contains(cardA) || out[0].Contains(cardA) {
		t.Error("output does not reflect the move")
	}
}

func TestUpdateSameBucketKeepsCard(t *testing.T) {
	in := BucketMap{0: NewCardSet(cardA)}
	out := mustUpdate(t, in, cardA, Wrong)
	if !out[0].Contains(cardA) || out.TotalCards() != 1 {
		t.Errorf("Wrong from bucket 0: got %+v", out)
	}
	capped := BucketMap{4: NewCardSet(cardB)}
	out = mustUpdate(t, capped, cardB, Easy)
	if !out[4].Contains(cardB) || out.TotalCards() != 1 {
		t.Errorf("Easy from bucket 4: got %+v", out)
	}
	if capped[4].Len() != 1 {
		t.Error("input mutated")
	}
}

func TestUpdateReplacesStoredPayload(t *testing.T) {
	in := BucketMap{1: NewCardSet(Flashcard{Front: "A", Back: "a", Hint: "old"})}
	out := mustUpdate(t, in, Flashcard{Front: "A", Back: "a", Hint: "new"}, Hard)
	c, b, ok := out.Find(cardA.Key())
	if !ok || b != 2 || c.Hint != "new" {
		t.Errorf("Find = (%+v, %d, %v), want new hint in bucket 2", c, b, ok)
	}
}

func TestUpdateKeepsEmptiedSourceBucket(t *testing.T) {
	out := mustUpdate(t, BucketMap{2: NewCardSet(cardA)}, cardA, Hard)
	set, ok := out[2]
	if !ok || set.Len() != 0 {
		t.Errorf("bucket 2 = %v (present %v), want present and empty", set, ok)
	}
}

func TestUpdateInvalidDifficulty(t *testing.T) {
	in := BucketMap{0: NewCardSet(cardA)}
	for _, d := range []AnswerDifficulty{0, 4, -1} {
		out, err := Update(in, cardA, d)
		if !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("Update(%d) error = %v, want ErrInvalidDifficulty", int(d), err)
		}
		if out != nil {
			t.Errorf("Update(%d) returned a map on error", int(d))
		}
	}
}

func TestReviewRecord(t *testing.T) {
	m := BucketMap{1: NewCardSet(cardA)}
	next, rec, err := Review(m, cardA, Easy, 6)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Day != 6 || rec.Difficulty != Easy || rec.PreviousBucket != 1 || rec.NewBucket != 3 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Card.Key() != cardA.Key() {
		t.Errorf("record card = %v", rec.Card.Key())
	}
	if b := bucketOf(t, next, cardA); b != 3 {
		t.Errorf("bucket %d, want 3", b)
	}
}

func TestReviewNewCardRecordsBucketZero(t *testing.T) {
	_, rec, err := Review(BucketMap{}, cardB, Hard, 0)
	if err != nil {
		t.Fatal(err)
	}
	if rec.PreviousBucket != 0 || rec.NewBucket != 1 {
		t.Errorf("record = %+v, want 0 → 1", rec)
	}
}

func TestReviewErrors(t *testing.T) {
	if _, _, err := Review(BucketMap{}, cardA, Easy, -1); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("negative day error = %v, want ErrInvalidDay", err)
	}
	if _, _, err := Review(BucketMap{}, cardA, 0, 1); !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("invalid difficulty error = %v, want ErrInvalidDifficulty", err)
	}
}
