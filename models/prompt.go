package models

import "time"

// LegacyOwnerID is the sentinel owner assigned by the schema to prompt rows
// that predate ownership tracking. New writes must always carry a real
// identifier; the sentinel exists only so historical rows stay valid.
const LegacyOwnerID = "legacy"

// Prompt is a reusable piece of text a user stores for later, optionally
// filed under one of their folders.
type Prompt struct {
	// ID is the server-assigned surrogate key. Immutable once assigned.
	ID int64 `json:"id"`

	// OwnerID is the opaque identifier of the owning user.
	OwnerID string `json:"owner_id"`

	// FolderID references the containing folder, or nil when the prompt is
	// unfiled. When the referenced folder is deleted the storage layer
	// clears this field rather than removing the prompt.
	FolderID *int64 `json:"folder_id"`

	// Name is the short title of the prompt.
	Name string `json:"name"`

	// Description explains what the prompt is for.
	Description string `json:"description"`

	// Content is the prompt text itself.
	Content string `json:"content"`

	// CreatedAt is set once at insertion and never changes afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the storage layer on every successful
	// mutation of the row.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Prompt model.
func (p Prompt) TableName() string {
	return "prompts"
}

// PromptUpdate describes a partial edit of a prompt. Nil fields are left
// untouched; the storage layer refreshes updated_at regardless of which
// fields change.
type PromptUpdate struct {
	// ID and OwnerID are filled from the request path and the caller's
	// identity, never from the request body.
	ID      int64  `json:"-"`
	OwnerID string `json:"-"`

	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
}

// PromptTemplate is a name/description/content triple used by the seed job
// to populate demo data.
type PromptTemplate struct {
	Name        string
	Description string
	Content     string
}
