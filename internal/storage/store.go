// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// ErrNotFound is returned when a referenced user or expense is absent.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("record already exists")
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The user.ID field will be populated
	// by the store if empty. Returns ErrDuplicate if the name is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByName retrieves a user by name.
	// Returns ErrNotFound if no such user exists.
	GetUserByName(ctx context.Context, name string) (*models.User, error)

	// ListUsers returns all users ordered by name.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateExpense persists a new expense. The expense.ID field will be
	// populated by the store if empty. Returns ErrDuplicate if the expense
	// name is taken.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpenseByName retrieves an expense by its unique name.
	// Returns ErrNotFound if no such expense exists.
	GetExpenseByName(ctx context.Context, name string) (*models.Expense, error)

	// ListExpenses returns all expenses ordered by name.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// AddParticipant records one user as a participant of one expense.
	// Re-adding an existing participant is a no-op.
	AddParticipant(ctx context.Context, p models.Participant) error

	// ListParticipantsByUser returns the participant rows for one user.
	ListParticipantsByUser(ctx context.Context, userName string) ([]models.Participant, error)

	// ListParticipants returns all participant rows.
	ListParticipants(ctx context.Context) ([]models.Participant, error)

	// CountParticipants returns the number of participants of one expense.
	CountParticipants(ctx context.Context, expenseName string) (int64, error)

	// PutShare records a percentage/amount share for one user on one
	// expense, replacing any existing row for the same pair.
	PutShare(ctx context.Context, share models.Share) error

	// GetShare retrieves the share row for an (expense, user) pair.
	// An absent row is not an error: it returns (nil, nil).
	GetShare(ctx context.Context, expenseName, userName string) (*models.Share, error)

	// ListShares returns all share rows.
	ListShares(ctx context.Context) ([]models.Share, error)

	// Close releases any resources held by the store.
	Close() error
}
