package models

// Service is a catalog entry. The catalog is fixed at startup; there are no
// create/update/delete operations on it.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Unit        string  `json:"unit"` // "kg" or "pcs"
}
