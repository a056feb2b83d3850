package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"laundrypro/internal/models"
)

// Record is a single named record row. The value column holds the record's
// JSON, written whole on every save.
type Record struct {
	Name  string `gorm:"primaryKey;type:varchar(64)"`
	Value string `gorm:"type:text"`
}

// GormStore is a GORM implementation of Store backed by a single records
// table.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the configured backend ("sqlite" or "postgres"), migrates
// the records table and returns a ready store.
func Open(driver, dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	return NewGormStore(db)
}

// NewGormStore wraps an existing GORM connection, migrating the records
// table if needed.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// read unmarshals the named record into out. It reports whether a usable
// record was found; a missing row or unparseable JSON both count as absent.
func (s *GormStore) read(name string, out any) (bool, error) {
	var rec Record
	if err := s.db.First(&rec, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read record %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		// Malformed JSON must not crash the caller; treat it as absent.
		return false, nil
	}
	return true, nil
}

// write serializes v and replaces the named record in one upsert.
func (s *GormStore) write(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", name, err)
	}
	rec := Record{Name: name, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", name, err)
	}
	return nil
}

// remove deletes the named record. Removing a missing record is a no-op.
func (s *GormStore) remove(name string) error {
	if err := s.db.Delete(&Record{}, "name = ?", name).Error; err != nil {
		return fmt.Errorf("failed to remove record %s: %w", name, err)
	}
	return nil
}

// Users returns all registered users, oldest first.
func (s *GormStore) Users() ([]models.User, error) {
	var users []models.User
	if _, err := s.read(RecordUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// SaveUsers replaces the user collection.
func (s *GormStore) SaveUsers(users []models.User) error {
	return s.write(RecordUsers, users)
}

// Session returns the current session's user snapshot, or nil when nobody is
// logged in.
func (s *GormStore) Session() (*models.User, error) {
	var user models.User
	found, err := s.read(RecordSession, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// SaveSession stores the logged-in user snapshot.
func (s *GormStore) SaveSession(user *models.User) error {
	return s.write(RecordSession, user)
}

// ClearSession logs the current user out. Clearing an absent session is fine.
func (s *GormStore) ClearSession() error {
	return s.remove(RecordSession)
}

// Orders returns the order history in insertion order.
func (s *GormStore) Orders() ([]models.Order, error) {
	var orders []models.Order
	if _, err := s.read(RecordOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// SaveOrders replaces the order history.
func (s *GormStore) SaveOrders(orders []models.Order) error {
	return s.write(RecordOrders, orders)
}

// CurrentOrder returns the in-progress order draft, or nil when there is
// none.
func (s *GormStore) CurrentOrder() (*models.Order, error) {
	var order models.Order
	found, err := s.read(RecordCurrentOrder, &order)
	if err != nil || !found {
		return nil, err
	}
	return &order, nil
}

// SaveCurrentOrder stores the in-progress order draft.
func (s *GormStore) SaveCurrentOrder(order *models.Order) error {
	return s.write(RecordCurrentOrder, order)
}

// ClearCurrentOrder discards the in-progress draft, if any.
func (s *GormStore) ClearCurrentOrder() error {
	return s.remove(RecordCurrentOrder)
}

// Theme returns the persisted display preference, or "" when unset.
func (s *GormStore) Theme() (string, error) {
	var theme string
	if _, err := s.read(RecordTheme, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

// SaveTheme stores the display preference.
func (s *GormStore) SaveTheme(theme string) error {
	return s.write(RecordTheme, theme)
}
