package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/models"
	"github.com/echuwok12/SplitPayment/internal/storage"
)

const folderColumns = `id, name, description, start_date, created_at, created_by, is_active`

// CreateFolder inserts a folder. ID and CreatedAt are generated when empty.
func (s *SQLiteStore) CreateFolder(ctx context.Context, folder *models.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.New().String()
	}
	if folder.CreatedAt == 0 {
		folder.CreatedAt = nowUnix()
	}

	query := `
		INSERT INTO folders (` + folderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		folder.ID,
		folder.Name,
		nullString(folder.Description),
		unixPtr(folder.StartDate),
		folder.CreatedAt,
		folder.CreatedBy,
		folder.IsActive,
	)
	if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY) {
		return apperr.NotFoundf("user not found: %s", folder.CreatedBy)
	}
	if err != nil {
		return apperr.Persistence("create folder", err)
	}

	return nil
}

// GetFolder retrieves a folder by ID.
func (s *SQLiteStore) GetFolder(ctx context.Context, folderID string) (*models.Folder, error) {
	return getFolder(ctx, s.db, folderID)
}

// ListFoldersByCreator returns the folders owned by userID, newest first.
func (s *SQLiteStore) ListFoldersByCreator(ctx context.Context, userID string) ([]models.Folder, error) {
	query := `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE created_by = ?
		ORDER BY created_at DESC, rowid DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperr.Persistence("list folders", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, apperr.Persistence("scan folder", err)
		}
		folders = append(folders, *folder)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate folders", err)
	}

	return folders, nil
}

// UpdateFolder applies the non-nil fields of update.
func (s *SQLiteStore) UpdateFolder(ctx context.Context, folderID string, update models.FolderUpdate) (*models.Folder, error) {
	var folder *models.Folder
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		folder, err = getFolder(ctx, tx, folderID)
		if err != nil {
			return err
		}

		if update.Name != nil {
			folder.Name = *update.Name
		}
		if update.Description != nil {
			folder.Description = *update.Description
		}
		if update.StartDate != nil {
			folder.StartDate = update.StartDate
		}
		if update.IsActive != nil {
			folder.IsActive = *update.IsActive
		}

		query := `
			UPDATE folders
			SET name = ?, description = ?, start_date = ?, is_active = ?
			WHERE id = ?
		`
		if _, err := tx.ExecContext(ctx, query,
			folder.Name,
			nullString(folder.Description),
			unixPtr(folder.StartDate),
			folder.IsActive,
			folder.ID,
		); err != nil {
			return apperr.Persistence("update folder", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// LoadFolderSnapshot reads the folder, its members, expenses and shares
// inside one read transaction so they describe a single committed state.
func (s *SQLiteStore) LoadFolderSnapshot(ctx context.Context, folderID string) (*storage.FolderSnapshot, error) {
	var snap storage.FolderSnapshot
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		folder, err := getFolder(ctx, tx, folderID)
		if err != nil {
			return err
		}
		snap.Folder = *folder

		if snap.Members, err = listMembers(ctx, tx, folderID); err != nil {
			return err
		}
		if snap.Expenses, err = listExpenses(ctx, tx, folderID); err != nil {
			return err
		}
		if snap.Shares, err = listFolderShares(ctx, tx, folderID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func getFolder(ctx context.Context, q querier, folderID string) (*models.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folders WHERE id = ?`

	folder, err := scanFolder(q.QueryRowContext(ctx, query, folderID))
	if err != nil {
		return nil, notFoundOr(err, "get folder", "folder", folderID)
	}
	return folder, nil
}

func scanFolder(row rowScanner) (*models.Folder, error) {
	var (
		folder      models.Folder
		description sql.NullString
		startDate   sql.NullInt64
	)
	err := row.Scan(
		&folder.ID,
		&folder.Name,
		&description,
		&startDate,
		&folder.CreatedAt,
		&folder.CreatedBy,
		&folder.IsActive,
	)
	if err != nil {
		return nil, err
	}
	folder.Description = description.String
	folder.StartDate = timePtr(startDate)
	return &folder, nil
}
