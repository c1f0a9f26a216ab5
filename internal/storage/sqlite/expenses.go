package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateExpense inserts a new expense into the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, expense_date, group_name, expense_name, total_amount, split_type, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID,
		expense.ExpenseDate,
		expense.GroupName,
		expense.ExpenseName,
		expense.TotalAmount.StringFixed(2),
		string(expense.SplitType),
		expense.CreatedBy,
	)
	if err != nil {
		if cerr := asConstraintErr(err); cerr == storage.ErrDuplicate {
			return fmt.Errorf("expense %q: %w", expense.ExpenseName, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetExpenseByName retrieves an expense by its unique name.
func (s *SQLiteStore) GetExpenseByName(ctx context.Context, name string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, expense_date, group_name, expense_name, total_amount, split_type, created_by
		 FROM expenses WHERE expense_name = ?`,
		name,
	)

	expense, err := scanExpense(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense by name: %w", err)
	}

	return expense, nil
}

// ListExpenses retrieves all expenses ordered by name.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expense_date, group_name, expense_name, total_amount, split_type, created_by
		 FROM expenses ORDER BY expense_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// scanExpense reads one expense row, parsing the stored decimal text.
func scanExpense(scan func(dest ...any) error) (*models.Expense, error) {
	expense := &models.Expense{}
	var total, splitType string

	err := scan(
		&expense.ID,
		&expense.ExpenseDate,
		&expense.GroupName,
		&expense.ExpenseName,
		&total,
		&splitType,
		&expense.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	expense.TotalAmount, err = decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("stored total_amount %q is not a decimal: %w", total, err)
	}
	expense.SplitType = models.SplitType(splitType)

	return expense, nil
}
