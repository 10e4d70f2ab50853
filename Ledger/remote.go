package Ledger

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"MissionControl/Models"
)

// RemoteStore is the cloud side of the ledger. Every method tolerates the
// store being down; an unconfigured store reports Configured() == false and
// the synchronizer stays in offline mode for the lifetime of the process.
type RemoteStore interface {
	Configured() bool
	EnsureSchema(ctx context.Context) error
	FetchAll(ctx context.Context) ([]Models.Assignment, error)
	Upsert(ctx context.Context, a Models.Assignment) error
	Delete(ctx context.Context, taskID string) error
}

// AssignmentRow mirrors the original cloud schema: the full record as one
// JSON blob keyed by task id, with last_updated denormalized for ordering.
type AssignmentRow struct {
	TaskID      string         `gorm:"column:task_id;primaryKey"`
	Data        datatypes.JSON `gorm:"column:data;not null"`
	LastUpdated string         `gorm:"column:last_updated;not null;index"`
}

func (AssignmentRow) TableName() string {
	return "assignments"
}

// GormStore implements RemoteStore over a gorm connection. A nil db means the
// store is unconfigured.
type GormStore struct {
	db *gorm.DB
}

// OpenRemote connects to the remote ledger store. DATABASE_URL selects
// Postgres (the production deployment); LEDGER_DB_PATH selects a local sqlite
// file, useful for single-host installs. With neither set the store is
// unconfigured and the system runs local-only.
func OpenRemote() *GormStore {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("remote store: postgres connection failed: %v", err)
			return &GormStore{}
		}
		return &GormStore{db: db}
	}
	if path := os.Getenv("LEDGER_DB_PATH"); path != "" {
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Printf("remote store: sqlite open failed: %v", err)
			return &GormStore{}
		}
		return &GormStore{db: db}
	}
	log.Println("remote store: not configured, running local-only")
	return &GormStore{}
}

func (s *GormStore) Configured() bool {
	return s != nil && s.db != nil
}

func (s *GormStore) EnsureSchema(ctx context.Context) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	return s.db.WithContext(ctx).AutoMigrate(&AssignmentRow{})
}

func (s *GormStore) FetchAll(ctx context.Context) ([]Models.Assignment, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	var rows []AssignmentRow
	if err := s.db.WithContext(ctx).Order("last_updated DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]Models.Assignment, 0, len(rows))
	for _, row := range rows {
		var a Models.Assignment
		if err := json.Unmarshal(row.Data, &a); err != nil {
			log.Printf("remote store: skipping malformed record %s: %v", row.TaskID, err)
			continue
		}
		records = append(records, a)
	}
	return records, nil
}

func (s *GormStore) Upsert(ctx context.Context, a Models.Assignment) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	blob, err := json.Marshal(a)
	if err != nil {
		return err
	}
	row := AssignmentRow{TaskID: a.TaskID, Data: blob, LastUpdated: a.LastUpdated}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "last_updated"}),
	}).Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, taskID string) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	return s.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&AssignmentRow{}).Error
}
