package models

import "time"

// Folder groups members and expenses, e.g. "Lisbon trip".
// Folders are never hard-deleted; IsActive is cleared to mark completion.
type Folder struct {
	// ID is the unique identifier for the folder (UUID format).
	ID string

	// Name is the display name of the folder.
	Name string

	// Description is an optional free-form note.
	Description string

	// StartDate is when the trip or event starts. Nil when not set.
	StartDate *time.Time

	// CreatedAt is the Unix timestamp when the folder was created.
	CreatedAt int64

	// CreatedBy is the ID of the owning user.
	CreatedBy string

	// IsActive is false once the folder is marked complete.
	IsActive bool
}

// FolderUpdate carries the mutable fields of a folder. Nil fields are left unchanged.
type FolderUpdate struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	IsActive    *bool
}
