package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// AddParticipant records one user as a participant of one expense.
// INSERT OR IGNORE makes re-adding an existing participant a no-op.
func (s *SQLiteStore) AddParticipant(ctx context.Context, p models.Participant) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO expense_user (expense_name, user_name) VALUES (?, ?)",
		p.ExpenseName, p.UserName,
	)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// ListParticipantsByUser retrieves the participant rows for one user.
func (s *SQLiteStore) ListParticipantsByUser(ctx context.Context, userName string) ([]models.Participant, error) {
	return s.queryParticipants(ctx,
		"SELECT expense_name, user_name FROM expense_user WHERE user_name = ? ORDER BY expense_name",
		userName,
	)
}

// ListParticipants retrieves all participant rows.
func (s *SQLiteStore) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	return s.queryParticipants(ctx,
		"SELECT expense_name, user_name FROM expense_user ORDER BY expense_name, user_name",
	)
}

func (s *SQLiteStore) queryParticipants(ctx context.Context, query string, args ...any) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ExpenseName, &p.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// CountParticipants returns the number of participants of one expense.
func (s *SQLiteStore) CountParticipants(ctx context.Context, expenseName string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM expense_user WHERE expense_name = ?",
		expenseName,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

// PutShare records a share row, replacing any existing row for the same
// (expense, user) pair.
func (s *SQLiteStore) PutShare(ctx context.Context, share models.Share) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expense_share (expense_name, user_name, percentage, amount)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (expense_name, user_name)
		 DO UPDATE SET percentage = excluded.percentage, amount = excluded.amount`,
		share.ExpenseName,
		share.UserName,
		share.Percentage.StringFixed(2),
		share.Amount.StringFixed(2),
	)
	if err != nil {
		return fmt.Errorf("failed to put share: %w", err)
	}
	return nil
}

// GetShare retrieves the share row for an (expense, user) pair.
// An absent row returns (nil, nil): missing shares mean a zero share.
func (s *SQLiteStore) GetShare(ctx context.Context, expenseName, userName string) (*models.Share, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT expense_name, user_name, percentage, amount
		 FROM expense_share WHERE expense_name = ? AND user_name = ?`,
		expenseName, userName,
	)

	share, err := scanShare(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get share: %w", err)
	}

	return share, nil
}

// ListShares retrieves all share rows.
func (s *SQLiteStore) ListShares(ctx context.Context) ([]models.Share, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT expense_name, user_name, percentage, amount
		 FROM expense_share ORDER BY expense_name, user_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	shares := []models.Share{}
	for rows.Next() {
		share, err := scanShare(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, *share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}

	return shares, nil
}

func scanShare(scan func(dest ...any) error) (*models.Share, error) {
	share := &models.Share{}
	var percentage, amount string

	err := scan(&share.ExpenseName, &share.UserName, &percentage, &amount)
	if err != nil {
		return nil, err
	}

	share.Percentage, err = decimal.NewFromString(percentage)
	if err != nil {
		return nil, fmt.Errorf("stored percentage %q is not a decimal: %w", percentage, err)
	}
	share.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("stored amount %q is not a decimal: %w", amount, err)
	}

	return share, nil
}
