package store

import (
	"laundrypro/internal/models"
)

// Names of the logical records kept in the local store. These match the
// persisted key layout, so a store written by an older build reads back
// unchanged.
const (
	RecordUsers        = "users"
	RecordSession      = "user"
	RecordOrders       = "allOrders"
	RecordCurrentOrder = "currentOrder"
	RecordTheme        = "theme"
)

// Store is the single point of access to the named records. One typed
// accessor pair per record; callers never touch raw keys or JSON.
//
// Absent records read back as empty values with a nil error, and a record
// that fails to parse is treated the same as an absent one. Every write
// replaces the whole record.
type Store interface {
	Users() ([]models.User, error)
	SaveUsers(users []models.User) error

	Session() (*models.User, error)
	SaveSession(user *models.User) error
	ClearSession() error

	Orders() ([]models.Order, error)
	SaveOrders(orders []models.Order) error

	CurrentOrder() (*models.Order, error)
	SaveCurrentOrder(order *models.Order) error
	ClearCurrentOrder() error

	Theme() (string, error)
	SaveTheme(theme string) error
}
