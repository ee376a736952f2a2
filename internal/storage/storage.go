package storage

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrAlreadyJoined     = errors.New("already joined")
	ErrNotJoined         = errors.New("not joined")
	ErrCapacityFull      = errors.New("capacity full")
	ErrLeaderCannotLeave = errors.New("leader cannot leave own community")
)

// Storage wraps the gorm handle with the persistence operations the
// handlers need. Join/leave operations run the row mutation and the
// denormalized counter adjustment in a single transaction.
type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
