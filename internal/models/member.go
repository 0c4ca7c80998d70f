package models

// Member is a participant in a folder.
// Members may be placeholders with no account (UserID empty).
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// FolderID is the owning folder.
	FolderID string

	// UserID links the member to a registered user. Empty for placeholders.
	UserID string

	// Name is the display name of the member within the folder.
	Name string

	// IsActive is false for members who left the folder.
	// Inactive members keep their history but are skipped by new equal splits.
	IsActive bool

	// CreatedAt is the Unix timestamp when the member was added.
	// Equal splits hand leftover cents out in this order.
	CreatedAt int64
}

// MemberUpdate carries the mutable fields of a member. Nil fields are left unchanged.
type MemberUpdate struct {
	Name     *string
	IsActive *bool
}
