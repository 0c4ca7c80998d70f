package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/models"
)

const memberColumns = `id, folder_id, user_id, name, is_active, created_at`

// CreateMember inserts a member. ID and CreatedAt are generated when empty.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = nowUnix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := getFolder(ctx, tx, member.FolderID); err != nil {
			return err
		}

		query := `
			INSERT INTO members (` + memberColumns + `)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query,
			member.ID,
			member.FolderID,
			nullString(member.UserID),
			member.Name,
			member.IsActive,
			member.CreatedAt,
		)
		// The folder was just found, so a foreign key failure points at the user.
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return apperr.NotFoundf("user not found: %s", member.UserID)
		}
		if err != nil {
			return apperr.Persistence("create member", err)
		}
		return nil
	})
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	return getMember(ctx, s.db, memberID)
}

// ListMembers returns a folder's members in creation order.
func (s *SQLiteStore) ListMembers(ctx context.Context, folderID string) ([]models.Member, error) {
	return listMembers(ctx, s.db, folderID)
}

// UpdateMember applies the non-nil fields of update.
func (s *SQLiteStore) UpdateMember(ctx context.Context, memberID string, update models.MemberUpdate) (*models.Member, error) {
	var member *models.Member
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		member, err = getMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if update.Name != nil {
			member.Name = *update.Name
		}
		if update.IsActive != nil {
			member.IsActive = *update.IsActive
		}

		query := `UPDATE members SET name = ?, is_active = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, member.Name, member.IsActive, member.ID); err != nil {
			return apperr.Persistence("update member", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func getMember(ctx context.Context, q querier, memberID string) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = ?`

	member, err := scanMember(q.QueryRowContext(ctx, query, memberID))
	if err != nil {
		return nil, notFoundOr(err, "get member", "member", memberID)
	}
	return member, nil
}

func listMembers(ctx context.Context, q querier, folderID string) ([]models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE folder_id = ?
		ORDER BY created_at, rowid
	`

	rows, err := q.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, apperr.Persistence("list members", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, apperr.Persistence("scan member", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate members", err)
	}

	return members, nil
}

func scanMember(row rowScanner) (*models.Member, error) {
	var (
		member models.Member
		userID sql.NullString
	)
	err := row.Scan(
		&member.ID,
		&member.FolderID,
		&userID,
		&member.Name,
		&member.IsActive,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	member.UserID = userID.String
	return &member, nil
}
