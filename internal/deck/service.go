package deck

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sky-flux/leitner"
	"github.com/sky-flux/leitner/history"
	"github.com/sky-flux/leitner/internal/observability"
	"github.com/sky-flux/leitner/internal/platform/logger"
	"github.com/sky-flux/leitner/internal/store"
)

// Struggling cards are those answered correctly less than this percentage of
// the time over at least strugglingMinAttempts attempts.
const (
	strugglingThreshold   = 60.0
	strugglingMinAttempts = 3
)

// Session is the set of cards to practice on Day.
type Session struct {
	Cards []leitner.Flashcard `json:"cards"`
	Day   int                 `json:"day"`
}

// Report extends ProgressStats with figures derived from the practice log.
type Report struct {
	Progress         leitner.ProgressStats `json:"progress"`
	ReviewsPerBucket map[int]int           `json:"reviews_per_bucket"`
	ActiveDays       int                   `json:"active_days"`
	Streak           int                   `json:"streak"`
	Struggling       []history.CardSummary `json:"struggling"`
}

// Service is the stateful deck on top of a Store. Every operation loads the
// state it needs, runs the pure scheduler functions and persists the result
// while holding a single lock.
type Service struct {
	mu     sync.Mutex
	store  store.Store
	log    *logger.Logger
	tracer trace.Tracer
}

func NewService(st store.Store, baseLog *logger.Logger) *Service {
	return &Service{
		store:  st,
		log:    baseLog.With("service", "DeckService"),
		tracer: observability.Tracer(),
	}
}

func (s *Service) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "deck."+op)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// AddCard puts a new card in bucket 0.
func (s *Service) AddCard(ctx context.Context, card leitner.Flashcard) (err error) {
	ctx, span := s.start(ctx, "AddCard")
	defer func() { endSpan(span, err) }()

	if strings.TrimSpace(card.Front) == "" {
		return ErrEmptyFront
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := s.store.LoadBuckets(ctx)
	if err != nil {
		return err
	}
	if buckets == nil {
		buckets = leitner.BucketMap{}
	}
	if _, _, ok := buckets.Find(card.Key()); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, card.Key())
	}
	start := buckets[0].Clone()
	start.Add(card)
	buckets[0] = start
	if err := s.store.SaveBuckets(ctx, buckets); err != nil {
		return err
	}
	s.log.Info("card added", "card", card.Key().String())
	return nil
}

// Practice returns the cards due on day, or on the stored current day when
// day is nil.
func (s *Service) Practice(ctx context.Context, day *int) (sess Session, err error) {
	ctx, span := s.start(ctx, "Practice")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.resolveDay(ctx, day)
	if err != nil {
		return Session{}, err
	}
	buckets, err := s.store.LoadBuckets(ctx)
	if err != nil {
		return Session{}, err
	}
	cards, err := leitner.DueCards(buckets, d)
	if err != nil {
		return Session{}, err
	}
	if cards == nil {
		cards = []leitner.Flashcard{}
	}
	span.SetAttributes(attribute.Int("leitner.day", d), attribute.Int("leitner.due", len(cards)))
	return Session{Cards: cards, Day: d}, nil
}

// Answer records the outcome of one review and moves the card.
func (s *Service) Answer(ctx context.Context, front, back string, difficulty leitner.AnswerDifficulty, day *int) (rec leitner.PracticeRecord, err error) {
	ctx, span := s.start(ctx, "Answer")
	defer func() { endSpan(span, err) }()

	if !difficulty.IsValid() {
		return leitner.PracticeRecord{}, fmt.Errorf("%w: %d", leitner.ErrInvalidDifficulty, int(difficulty))
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.resolveDay(ctx, day)
	if err != nil {
		return leitner.PracticeRecord{}, err
	}
	buckets, err := s.store.LoadBuckets(ctx)
	if err != nil {
		return leitner.PracticeRecord{}, err
	}
	key := leitner.CardKey{Front: front, Back: back}
	card, _, ok := buckets.Find(key)
	if !ok {
		return leitner.PracticeRecord{}, fmt.Errorf("%w: %s", ErrCardNotFound, key)
	}

	next, rec, err := leitner.Review(buckets, card, difficulty, d)
	if err != nil {
		return leitner.PracticeRecord{}, err
	}
	if err := s.store.Commit(ctx, next, rec); err != nil {
		return leitner.PracticeRecord{}, err
	}
	s.log.Debug("card answered",
		"card", key.String(),
		"difficulty", difficulty.String(),
		"from", rec.PreviousBucket,
		"to", rec.NewBucket,
		"day", d,
	)
	return rec, nil
}

func (s *Service) Hint(ctx context.Context, front, back string) (hint string, err error) {
	ctx, span := s.start(ctx, "Hint")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := s.store.LoadBuckets(ctx)
	if err != nil {
		return "", err
	}
	key := leitner.CardKey{Front: front, Back: back}
	card, _, ok := buckets.Find(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrCardNotFound, key)
	}
	return leitner.Hint(card), nil
}

func (s *Service) Progress(ctx context.Context) (stats leitner.ProgressStats, err error) {
	ctx, span := s.start(ctx, "Progress")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, records, err := s.snapshot(ctx)
	if err != nil {
		return leitner.ProgressStats{}, err
	}
	return leitner.ComputeProgress(buckets, records), nil
}

// Report returns the progress statistics together with the log-derived
// figures: reviews per bucket, active days, the streak ending at the
// current day and the struggling cards.
func (s *Service) Report(ctx context.Context) (rep Report, err error) {
	ctx, span := s.start(ctx, "Report")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, records, err := s.snapshot(ctx)
	if err != nil {
		return Report{}, err
	}
	today, err := s.store.CurrentDay(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Progress:         leitner.ComputeProgress(buckets, records),
		ReviewsPerBucket: history.ReviewsPerBucket(records),
		ActiveDays:       history.ActiveDays(records),
		Streak:           history.Streak(records, today),
		Struggling:       history.Struggling(history.Summarize(records), strugglingThreshold, strugglingMinAttempts),
	}, nil
}

// Audit rebuilds the bucket state from the practice log, in the order the
// answers were recorded, and reports the cards whose stored bucket disagrees
// with the replayed one. Cards added but never answered are expected in
// bucket 0.
func (s *Service) Audit(ctx context.Context) (mismatched []leitner.CardKey, err error) {
	ctx, span := s.start(ctx, "Audit")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	replayed, err := leitner.ReplayInOrder(records)
	if err != nil {
		return nil, err
	}
	for _, e := range buckets.Entries() {
		for _, c := range e.Cards {
			want, ok := replayed.BucketOf(c)
			if !ok {
				want = 0
			}
			if want != e.Bucket {
				mismatched = append(mismatched, c.Key())
			}
		}
	}
	if len(mismatched) > 0 {
		s.log.Warn("stored buckets disagree with practice log", "cards", len(mismatched))
	}
	return mismatched, nil
}

func (s *Service) CurrentDay(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CurrentDay(ctx)
}

// AdvanceDay moves the current day forward by one and returns it.
func (s *Service) AdvanceDay(ctx context.Context) (day int, err error) {
	ctx, span := s.start(ctx, "AdvanceDay")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.store.CurrentDay(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.store.SetCurrentDay(ctx, cur+1); err != nil {
		return 0, err
	}
	s.log.Info("day advanced", "day", cur+1)
	return cur + 1, nil
}

// Forecast returns the due counts for the days starting at the current day.
func (s *Service) Forecast(ctx context.Context, days int) (from int, due []int, err error) {
	ctx, span := s.start(ctx, "Forecast")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err = s.store.CurrentDay(ctx)
	if err != nil {
		return 0, nil, err
	}
	buckets, err := s.store.LoadBuckets(ctx)
	if err != nil {
		return 0, nil, err
	}
	due, err = leitner.Forecast(buckets, from, days)
	if err != nil {
		return 0, nil, err
	}
	return from, due, nil
}

func (s *Service) resolveDay(ctx context.Context, day *int) (int, error) {
	if day == nil {
		return s.store.CurrentDay(ctx)
	}
	if *day < 0 {
		return 0, fmt.Errorf("%w: %d", leitner.ErrInvalidDay, *day)
	}
	return *day, nil
}

func (s *Service) snapshot(ctx context.Context) (leitner.BucketMap, []leitner.PracticeRecord, error) {
	buckets, err := s.store.LoadBuckets(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.store.History(ctx)
	if err != nil {
		return nil, nil, err
	}
	return buckets, records, nil
}
