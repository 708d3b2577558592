package models

import "time"

// Folder groups prompts under a user-chosen name. A folder belongs to exactly
// one user; nothing prevents a user from owning several folders with the same
// name.
type Folder struct {
	// ID is the server-assigned surrogate key. Immutable once assigned.
	ID int64 `json:"id"`

	// OwnerID is the opaque identifier of the owning user as issued by the
	// external identity provider. Required on every write.
	OwnerID string `json:"owner_id"`

	// Name is the display name of the folder (e.g. "Work Prompts").
	Name string `json:"name"`

	// CreatedAt is set once at insertion and never changes afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the storage layer on every successful
	// mutation of the row.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}
