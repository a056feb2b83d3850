package models

// IdentifierKind tells how a user signed up: with an email address or a
// mobile number. It is fixed at signup and checked on every login and reset.
type IdentifierKind string

const (
	KindEmail  IdentifierKind = "email"
	KindMobile IdentifierKind = "mobile"
)

// User represents an account in the local store.
// The password is stored as entered; credential checks are exact string
// comparisons, matching the persisted record layout.
type User struct {
	Identifier     string         `json:"identifier" validate:"required"`
	IdentifierKind IdentifierKind `json:"identifierKind" validate:"required,oneof=email mobile"`
	Password       string         `json:"password" validate:"required,min=6,max=15"`
}
