package session

import (
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one browser session. Token holds the bearer token issued by the
// remote API; Cart holds the serialized shopping cart. Both survive page
// reloads and server restarts.
type Record struct {
	ID        string `gorm:"primaryKey"`
	Token     string
	Cart      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Record) TableName() string { return "sessions" }

// Store persists session records in a local sqlite database.
type Store struct {
	db *gorm.DB
}

// NewStore opens (or creates) the session database and migrates the schema.
func NewStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get loads a session record by ID.
func (s *Store) Get(id string) (Record, bool) {
	var rec Record
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, false
	}
	if err != nil {
		return Record{}, false
	}
	return rec, true
}

// SaveToken upserts the bearer token for a session.
func (s *Store) SaveToken(id, token string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
	}).Create(&Record{ID: id, Token: token}).Error
}

// SaveCart upserts the serialized cart for a session.
func (s *Store) SaveCart(id, cart string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"cart", "updated_at"}),
	}).Create(&Record{ID: id, Cart: cart}).Error
}

// Delete removes a session record. Deleting a missing session is not an error.
func (s *Store) Delete(id string) error {
	return s.db.Delete(&Record{}, "id = ?", id).Error
}
