package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const errDBNil = "store is nil"

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

// DB is a handle on the history database.
type DB struct {
	DB *gorm.DB
	db *sql.DB
}

// Run is one translated score.
type Run struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Input     string `gorm:"index:idx_run_input"`
	Output    string
	Title     string
	Encoding  string
	Pages     int
	Lines     int
	Measures  int
	Warnings  int
	Failed    bool
	CreatedAt time.Time `gorm:"index:idx_run_created"`

	Diagnostics []Diagnostic `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

// Diagnostic is a warning or error reported while translating a run.
type Diagnostic struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	RunID     string `gorm:"type:varchar(36);index:idx_diag_run"`
	Level     string
	InputLine int
	Message   string
}

// Open opens or creates the database at path.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}

	// SQLite serializes writers; batch workers share this single connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&Run{}, &Diagnostic{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &DB{DB: db, db: sqlDB}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// RecordRun stores run with its diagnostics and returns the run id.
// A missing id or creation time is filled in.
func (d *DB) RecordRun(run Run, diagnostics []Diagnostic) (string, error) {
	if d == nil || d.DB == nil {
		return "", errors.New(errDBNil)
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.Diagnostics = nil

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("creating run: %w", err)
		}
		if len(diagnostics) == 0 {
			return nil
		}

		rows := make([]Diagnostic, len(diagnostics))
		for i, diag := range diagnostics {
			diag.ID = 0
			diag.RunID = run.ID
			rows[i] = diag
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("creating diagnostics: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return run.ID, nil
}

// ListRuns returns the most recent runs first, without diagnostics.
// A limit of zero or less returns every run.
func (d *DB) ListRuns(limit int) ([]Run, error) {
	if d == nil || d.DB == nil {
		return nil, errors.New(errDBNil)
	}

	q := d.DB.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var runs []Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// GetRun returns a run and its diagnostics ordered by input line.
func (d *DB) GetRun(id string) (*Run, error) {
	if d == nil || d.DB == nil {
		return nil, errors.New(errDBNil)
	}

	var run Run
	err := d.DB.Preload("Diagnostics", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("input_line ASC, id ASC")
	}).Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run: %w", err)
	}
	return &run, nil
}

// DeleteRun removes a run and its diagnostics.
func (d *DB) DeleteRun(id string) error {
	if d == nil || d.DB == nil {
		return errors.New(errDBNil)
	}

	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&Diagnostic{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Run{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%s: %w", id, ErrRunNotFound)
		}
		return nil
	})
}
