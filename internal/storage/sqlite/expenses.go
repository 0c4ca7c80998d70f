package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/models"
)

const expenseColumns = `id, folder_id, description, amount, paid_by, split_type, created_at`

// CreateExpenseWithShares inserts an expense and its shares in one transaction.
// Any failure rolls back both, so an expense never exists without its shares.
func (s *SQLiteStore) CreateExpenseWithShares(ctx context.Context, expense *models.Expense, shares []models.ExpenseShare) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = nowUnix()
	}
	for i := range shares {
		if shares[i].ID == "" {
			shares[i].ID = uuid.New().String()
		}
		shares[i].ExpenseID = expense.ID
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		// The insert takes the write lock, so the membership check below
		// sees the same members the shares are written against.
		query := `
			INSERT INTO expenses (` + expenseColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query,
			expense.ID,
			expense.FolderID,
			expense.Description,
			expense.Amount.StringFixed(2),
			expense.PaidBy,
			string(expense.SplitType),
			expense.CreatedAt,
		)
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY) {
			if _, ferr := getFolder(ctx, tx, expense.FolderID); ferr != nil {
				return ferr
			}
			return apperr.NotFoundf("member not found: %s", expense.PaidBy)
		}
		if err != nil {
			return apperr.Persistence("create expense", err)
		}

		if err := checkFolderMembers(ctx, tx, expense, shares); err != nil {
			return err
		}

		if s.afterExpenseInsert != nil {
			if err := s.afterExpenseInsert(expense.ID); err != nil {
				return err
			}
		}

		shareQuery := `
			INSERT INTO expense_shares (id, expense_id, member_id, amount)
			VALUES (?, ?, ?, ?)
		`
		for _, share := range shares {
			_, err := tx.ExecContext(ctx, shareQuery,
				share.ID,
				share.ExpenseID,
				share.MemberID,
				share.Amount.StringFixed(2),
			)
			if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY) {
				return apperr.NotFoundf("member not found: %s", share.MemberID)
			}
			if err != nil {
				return apperr.Persistence("create expense share", err)
			}
		}
		return nil
	})
}

// checkFolderMembers rejects a payer or share member from another folder, and
// a payer that is no longer active.
func checkFolderMembers(ctx context.Context, tx *sql.Tx, expense *models.Expense, shares []models.ExpenseShare) error {
	members, err := listMembers(ctx, tx, expense.FolderID)
	if err != nil {
		return err
	}
	byID := make(map[string]models.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	payer, ok := byID[expense.PaidBy]
	if !ok {
		return apperr.Validationf("payer %s is not a member of folder %s", expense.PaidBy, expense.FolderID)
	}
	if !payer.IsActive {
		return apperr.Validationf("payer %s is not an active member", expense.PaidBy)
	}
	for _, share := range shares {
		if _, ok := byID[share.MemberID]; !ok {
			return apperr.Validationf("member %s is not a member of folder %s", share.MemberID, expense.FolderID)
		}
	}
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ?`

	expense, err := scanExpense(s.db.QueryRowContext(ctx, query, expenseID))
	if err != nil {
		return nil, notFoundOr(err, "get expense", "expense", expenseID)
	}
	return expense, nil
}

// ListExpenses returns a folder's expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, folderID string) ([]models.Expense, error) {
	return listExpenses(ctx, s.db, folderID)
}

// ListShares returns the shares of one expense in insertion order.
func (s *SQLiteStore) ListShares(ctx context.Context, expenseID string) ([]models.ExpenseShare, error) {
	query := `
		SELECT id, expense_id, member_id, amount
		FROM expense_shares
		WHERE expense_id = ?
		ORDER BY rowid
	`
	return queryShares(ctx, s.db, query, expenseID)
}

func listExpenses(ctx context.Context, q querier, folderID string) ([]models.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE folder_id = ?
		ORDER BY created_at DESC, rowid DESC
	`

	rows, err := q.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, apperr.Persistence("list expenses", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, apperr.Persistence("scan expense", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate expenses", err)
	}

	return expenses, nil
}

func listFolderShares(ctx context.Context, q querier, folderID string) ([]models.ExpenseShare, error) {
	query := `
		SELECT s.id, s.expense_id, s.member_id, s.amount
		FROM expense_shares s
		JOIN expenses e ON e.id = s.expense_id
		WHERE e.folder_id = ?
		ORDER BY e.created_at DESC, e.rowid DESC, s.rowid
	`
	return queryShares(ctx, q, query, folderID)
}

func queryShares(ctx context.Context, q querier, query string, arg string) ([]models.ExpenseShare, error) {
	rows, err := q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, apperr.Persistence("list expense shares", err)
	}
	defer rows.Close()

	var shares []models.ExpenseShare
	for rows.Next() {
		var share models.ExpenseShare
		if err := rows.Scan(&share.ID, &share.ExpenseID, &share.MemberID, &share.Amount); err != nil {
			return nil, apperr.Persistence("scan expense share", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate expense shares", err)
	}

	return shares, nil
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	var (
		expense   models.Expense
		splitType string
	)
	err := row.Scan(
		&expense.ID,
		&expense.FolderID,
		&expense.Description,
		&expense.Amount,
		&expense.PaidBy,
		&splitType,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	expense.SplitType = models.SplitType(splitType)
	return &expense, nil
}
