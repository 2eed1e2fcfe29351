package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sky-flux/leitner"
)

type cardRow struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Front     string         `gorm:"column:front;not null;uniqueIndex:idx_cards_front_back"`
	Back      string         `gorm:"column:back;not null;uniqueIndex:idx_cards_front_back"`
	Hint      string         `gorm:"column:hint"`
	Tags      datatypes.JSON `gorm:"column:tags"`
	Bucket    int            `gorm:"column:bucket;not null;index"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (cardRow) TableName() string { return "cards" }

type practiceRow struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Seq            int64          `gorm:"column:seq;not null;uniqueIndex"`
	Day            int            `gorm:"column:day;not null;index"`
	Front          string         `gorm:"column:front;not null"`
	Back           string         `gorm:"column:back;not null"`
	Hint           string         `gorm:"column:hint"`
	Tags           datatypes.JSON `gorm:"column:tags"`
	Difficulty     string         `gorm:"column:difficulty;not null"`
	PreviousBucket int            `gorm:"column:previous_bucket;not null"`
	NewBucket      int            `gorm:"column:new_bucket;not null"`
	CreatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (practiceRow) TableName() string { return "practice_records" }

type metaRow struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

func (metaRow) TableName() string { return "meta" }

func encodeTags(tags []string) (datatypes.JSON, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func decodeTags(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func newCardRow(bucket int, c leitner.Flashcard) (cardRow, error) {
	tags, err := encodeTags(c.Tags)
	if err != nil {
		return cardRow{}, err
	}
	now := time.Now().UTC()
	return cardRow{
		ID:        uuid.New(),
		Front:     c.Front,
		Back:      c.Back,
		Hint:      c.Hint,
		Tags:      tags,
		Bucket:    bucket,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r cardRow) card() (leitner.Flashcard, error) {
	tags, err := decodeTags(r.Tags)
	if err != nil {
		return leitner.Flashcard{}, err
	}
	return leitner.Flashcard{Front: r.Front, Back: r.Back, Hint: r.Hint, Tags: tags}, nil
}

func newPracticeRow(rec leitner.PracticeRecord) (practiceRow, error) {
	tags, err := encodeTags(rec.Card.Tags)
	if err != nil {
		return practiceRow{}, fmt.Errorf("store: record %s: %w", rec.Card.Key(), err)
	}
	return practiceRow{
		ID:             uuid.New(),
		Day:            rec.Day,
		Front:          rec.Card.Front,
		Back:           rec.Card.Back,
		Hint:           rec.Card.Hint,
		Tags:           tags,
		Difficulty:     rec.Difficulty.String(),
		PreviousBucket: rec.PreviousBucket,
		NewBucket:      rec.NewBucket,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (r practiceRow) record() (leitner.PracticeRecord, error) {
	tags, err := decodeTags(r.Tags)
	if err != nil {
		return leitner.PracticeRecord{}, err
	}
	d, err := leitner.ParseDifficulty(r.Difficulty)
	if err != nil {
		return leitner.PracticeRecord{}, err
	}
	return leitner.PracticeRecord{
		Day:            r.Day,
		Card:           leitner.Flashcard{Front: r.Front, Back: r.Back, Hint: r.Hint, Tags: tags},
		Difficulty:     d,
		PreviousBucket: r.PreviousBucket,
		NewBucket:      r.NewBucket,
	}, nil
}
