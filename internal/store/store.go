package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"

	"github.com/sky-flux/leitner"
	"github.com/sky-flux/leitner/internal/config"
	"github.com/sky-flux/leitner/internal/platform/logger"
)

const currentDayKey = "current_day"

// Store persists the bucket state, the practice log and the current day.
type Store interface {
	LoadBuckets(ctx context.Context) (leitner.BucketMap, error)
	// SaveBuckets replaces the stored cards with the contents of buckets.
	SaveBuckets(ctx context.Context, buckets leitner.BucketMap) error
	AppendRecord(ctx context.Context, rec leitner.PracticeRecord) error
	// Commit saves buckets and appends rec atomically: either both are
	// stored or neither is.
	Commit(ctx context.Context, buckets leitner.BucketMap, rec leitner.PracticeRecord) error
	// History returns every record in append order.
	History(ctx context.Context) ([]leitner.PracticeRecord, error)
	CurrentDay(ctx context.Context) (int, error)
	SetCurrentDay(ctx context.Context, day int) error
	Close() error
}

type gormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// Open connects to the configured database and migrates the schema.
func Open(cfg config.StorageConfig, baseLog *logger.Logger) (Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite, "":
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
	}

	log := baseLog.With("component", "Store", "driver", cfg.Driver)
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: gormLogger.New(gormWriter{log: log}, gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("store: connect %s: %w", cfg.Driver, err)
	}
	if err := db.AutoMigrate(&cardRow{}, &practiceRow{}, &metaRow{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	log.Debug("store ready")
	return &gormStore{db: db, log: log}, nil
}

func (s *gormStore) LoadBuckets(ctx context.Context) (leitner.BucketMap, error) {
	var rows []cardRow
	if err := s.db.WithContext(ctx).
		Order("bucket ASC, front ASC, back ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	buckets := leitner.BucketMap{}
	for _, r := range rows {
		c, err := r.card()
		if err != nil {
			return nil, fmt.Errorf("store: card %s: %w", r.ID, err)
		}
		set, ok := buckets[r.Bucket]
		if !ok {
			set = leitner.CardSet{}
			buckets[r.Bucket] = set
		}
		set.Add(c)
	}
	return buckets, nil
}

func (s *gormStore) SaveBuckets(ctx context.Context, buckets leitner.BucketMap) error {
	rows, keep, err := cardRows(buckets)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.replaceCards(tx, rows, keep)
	})
}

func (s *gormStore) AppendRecord(ctx context.Context, rec leitner.PracticeRecord) error {
	row, err := newPracticeRow(rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return appendRecord(tx, row)
	})
}

func (s *gormStore) Commit(ctx context.Context, buckets leitner.BucketMap, rec leitner.PracticeRecord) error {
	rows, keep, err := cardRows(buckets)
	if err != nil {
		return err
	}
	row, err := newPracticeRow(rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.replaceCards(tx, rows, keep); err != nil {
			return err
		}
		return appendRecord(tx, row)
	})
}

// cardRows flattens buckets into rows. A card held by several buckets is
// stored once, in the lowest.
func cardRows(buckets leitner.BucketMap) ([]cardRow, map[leitner.CardKey]struct{}, error) {
	keep := make(map[leitner.CardKey]struct{}, buckets.TotalCards())
	rows := make([]cardRow, 0, buckets.TotalCards())
	for _, e := range buckets.Entries() {
		for _, c := range e.Cards {
			if _, dup := keep[c.Key()]; dup {
				continue
			}
			row, err := newCardRow(e.Bucket, c)
			if err != nil {
				return nil, nil, fmt.Errorf("store: card %s: %w", c.Key(), err)
			}
			rows = append(rows, row)
			keep[c.Key()] = struct{}{}
		}
	}
	return rows, keep, nil
}

func (s *gormStore) replaceCards(tx *gorm.DB, rows []cardRow, keep map[leitner.CardKey]struct{}) error {
	if len(rows) > 0 {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "front"}, {Name: "back"}},
			DoUpdates: clause.AssignmentColumns([]string{"hint", "tags", "bucket", "updated_at"}),
		}).Create(&rows).Error; err != nil {
			return err
		}
	}

	var existing []cardRow
	if err := tx.Select("id", "front", "back").Find(&existing).Error; err != nil {
		return err
	}
	var stale []uuid.UUID
	for _, r := range existing {
		if _, ok := keep[leitner.CardKey{Front: r.Front, Back: r.Back}]; !ok {
			stale = append(stale, r.ID)
		}
	}
	if len(stale) > 0 {
		if err := tx.Where("id IN ?", stale).Delete(&cardRow{}).Error; err != nil {
			return err
		}
		s.log.Debug("removed stale cards", "count", len(stale))
	}
	return nil
}

// appendRecord assigns the next seq inside tx.
func appendRecord(tx *gorm.DB, row practiceRow) error {
	var last int64
	if err := tx.Model(&practiceRow{}).Select("COALESCE(MAX(seq), 0)").Scan(&last).Error; err != nil {
		return err
	}
	row.Seq = last + 1
	return tx.Create(&row).Error
}

func (s *gormStore) History(ctx context.Context) ([]leitner.PracticeRecord, error) {
	var rows []practiceRow
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]leitner.PracticeRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := r.record()
		if err != nil {
			return nil, fmt.Errorf("store: record %s: %w", r.ID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// CurrentDay returns 0 until SetCurrentDay has been called.
func (s *gormStore) CurrentDay(ctx context.Context) (int, error) {
	var row metaRow
	err := s.db.WithContext(ctx).Where("key = ?", currentDayKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	day, err := strconv.Atoi(row.Value)
	if err != nil {
		return 0, fmt.Errorf("store: corrupt %s %q: %w", currentDayKey, row.Value, err)
	}
	return day, nil
}

func (s *gormStore) SetCurrentDay(ctx context.Context, day int) error {
	if day < 0 {
		return fmt.Errorf("%w: %d", leitner.ErrInvalidDay, day)
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&metaRow{Key: currentDayKey, Value: strconv.Itoa(day)}).Error
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormWriter routes gorm's own warnings into the service logger.
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.SugaredLogger.Warnf(format, args...)
}
