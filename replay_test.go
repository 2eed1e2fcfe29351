package leitner

import (
	"errors"
	"math"
	"testing"
)

func TestReplayMatchesReviewSequence(t *testing.T) {
	moves := []struct {
		card Flashcard
		d    AnswerDifficulty
		day  int
	}{
		{cardA, Easy, 0},
		{cardB, Hard, 0},
		{cardC, Wrong, 0},
		{cardB, Easy, 2},
		{cardA, Wrong, 4},
		{cardC, Hard, 5},
		{cardA, Easy, 6},
	}

	m := BucketMap{}
	var history []PracticeRecord
	for _, mv := range moves {
		var rec PracticeRecord
		var err error
		m, rec, err = Review(m, mv.card, mv.d, mv.day)
		if err != nil {
			t.Fatal(err)
		}
		history = append(history, rec)
	}

	got, err := Replay(history)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	for _, c := range []Flashcard{cardA, cardB, cardC} {
		want := bucketOf(t, m, c)
		if b := bucketOf(t, got, c); b != want {
			t.Errorf("%v: replayed bucket %d, want %d", c.Key(), b, want)
		}
	}
	if got.TotalCards() != 3 {
		t.Errorf("TotalCards() = %d, want 3", got.TotalCards())
	}
}

func TestReplaySortsByDay(t *testing.T) {
	history := []PracticeRecord{
		{Day: 5, Card: cardA, Difficulty: Wrong},
		{Day: 1, Card: cardA, Difficulty: Easy},
	}
	m, err := Replay(history)
	if err != nil {
		t.Fatal(err)
	}
	if b := bucketOf(t, m, cardA); b != 0 {
		t.Errorf("bucket %d, want 0 (Wrong on day 5 is last)", b)
	}
	if history[0].Day != 5 {
		t.Error("Replay reordered the caller's slice")
	}
}

func TestReplayInOrderKeepsLogOrder(t *testing.T) {
	history := []PracticeRecord{
		{Day: 5, Card: cardA, Difficulty: Wrong},
		{Day: 1, Card: cardA, Difficulty: Easy},
	}
	m, err := ReplayInOrder(history)
	if err != nil {
		t.Fatal(err)
	}
	if b := bucketOf(t, m, cardA); b != 2 {
		t.Errorf("bucket %d, want 2 (Easy is applied last)", b)
	}
}

func TestReplaySortsExtremeDays(t *testing.T) {
	history := []PracticeRecord{
		{Day: math.MaxInt, Card: cardA, Difficulty: Wrong},
		{Day: -1, Card: cardA, Difficulty: Easy},
	}
	m, err := Replay(history)
	if err != nil {
		t.Fatal(err)
	}
	if b := bucketOf(t, m, cardA); b != 0 {
		t.Errorf("bucket %d, want 0 (Wrong on the later day is last)", b)
	}
}

func TestReplayEmpty(t *testing.T) {
	m, err := Replay(nil)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || m.TotalCards() != 0 {
		t.Errorf("Replay(nil) = %v, want empty map", m)
	}
}

func TestReplayInvalidRecord(t *testing.T) {
	_, err := Replay([]PracticeRecord{{Day: 0, Card: cardA, Difficulty: 9}})
	if !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("error = %v, want ErrInvalidDifficulty", err)
	}
}
