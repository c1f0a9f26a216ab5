// Package service implements the ledger operations on top of storage and
// the calculator.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// ErrValidation is returned when a request is missing or malforms a
// required field.
var ErrValidation = errors.New("invalid request")

// LedgerService exposes the expense ledger operations.
type LedgerService struct {
	store storage.Store
}

// New creates a new LedgerService with the given storage backend.
func New(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// CreateUser creates a user with the given name. The name is trimmed; a
// blank name fails validation and a taken name fails with
// storage.ErrDuplicate.
func (s *LedgerService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name cannot be blank", ErrValidation)
	}

	user := &models.User{Name: name}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("User created", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// CreateExpenseInput carries the fields needed to create an expense.
type CreateExpenseInput struct {
	ExpenseDate string
	GroupName   string
	ExpenseName string
	TotalAmount decimal.Decimal
	SplitType   string
	CreatedBy   string
}

// CreateExpense validates the input, requires the creator to exist, and
// persists the expense. The expense name must be globally unique.
func (s *LedgerService) CreateExpense(ctx context.Context, in CreateExpenseInput) (*models.Expense, error) {
	if strings.TrimSpace(in.ExpenseName) == "" {
		return nil, fmt.Errorf("%w: expense name cannot be blank", ErrValidation)
	}
	if strings.TrimSpace(in.GroupName) == "" {
		return nil, fmt.Errorf("%w: group name cannot be blank", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", in.ExpenseDate); err != nil {
		return nil, fmt.Errorf("%w: expense date must be YYYY-MM-DD", ErrValidation)
	}

	splitType, err := models.ParseSplitType(in.SplitType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	creator, err := s.store.GetUserByName(ctx, in.CreatedBy)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ExpenseDate: in.ExpenseDate,
		GroupName:   in.GroupName,
		ExpenseName: in.ExpenseName,
		TotalAmount: in.TotalAmount.Round(2),
		SplitType:   splitType,
		CreatedBy:   creator.Name,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"expense_name", expense.ExpenseName,
		"split_type", expense.SplitType,
		"total", expense.TotalAmount,
		"created_by", expense.CreatedBy,
	)
	return expense, nil
}

// AddParticipants records one participant row per user name on the expense.
// It deliberately does not check that the expense or the users exist: the
// mapping is a pass-through write loop, one store write per name, with no
// atomicity across the loop.
func (s *LedgerService) AddParticipants(ctx context.Context, expenseName string, userNames []string) error {
	for _, name := range userNames {
		p := models.Participant{ExpenseName: expenseName, UserName: name}
		if err := s.store.AddParticipant(ctx, p); err != nil {
			return fmt.Errorf("failed to add %q to expense %q: %w", name, expenseName, err)
		}
	}

	slog.Info("Participants added", "expense_name", expenseName, "count", len(userNames))
	return nil
}

// ShareInput carries one user's recorded percentage/amount for an expense.
type ShareInput struct {
	UserName   string
	Percentage decimal.Decimal
	Amount     decimal.Decimal
}

// SetShares records percentage/amount share rows for the expense, one per
// input, replacing any existing row for the same user.
func (s *LedgerService) SetShares(ctx context.Context, expenseName string, shares []ShareInput) error {
	for _, in := range shares {
		share := models.Share{
			ExpenseName: expenseName,
			UserName:    in.UserName,
			Percentage:  in.Percentage.Round(2),
			Amount:      in.Amount.Round(2),
		}
		if err := s.store.PutShare(ctx, share); err != nil {
			return fmt.Errorf("failed to record share for %q on expense %q: %w", in.UserName, expenseName, err)
		}
	}

	slog.Info("Shares recorded", "expense_name", expenseName, "count", len(shares))
	return nil
}

// UserBalances returns the signed share of the user on every expense the
// user participates in.
func (s *LedgerService) UserBalances(ctx context.Context, userName string) ([]models.ShareResult, error) {
	participants, err := s.store.ListParticipantsByUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	contexts := make([]calculator.ExpenseContext, 0, len(participants))
	for _, p := range participants {
		expense, err := s.store.GetExpenseByName(ctx, p.ExpenseName)
		if err != nil {
			return nil, err
		}

		count, err := s.store.CountParticipants(ctx, p.ExpenseName)
		if err != nil {
			return nil, err
		}

		share, err := s.store.GetShare(ctx, p.ExpenseName, userName)
		if err != nil {
			return nil, err
		}

		contexts = append(contexts, calculator.ExpenseContext{
			Expense:          *expense,
			ParticipantCount: count,
			Share:            share,
		})
	}

	results, err := calculator.UserBalances(userName, contexts)
	if err != nil {
		return nil, err
	}

	slog.Info("Balances computed", "user_name", userName, "expenses", len(results))
	return results, nil
}

// ListUsers returns all users.
func (s *LedgerService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// ListExpenses returns all expenses.
func (s *LedgerService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// ListParticipants returns all participant rows.
func (s *LedgerService) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	return s.store.ListParticipants(ctx)
}

// ListShares returns all share rows.
func (s *LedgerService) ListShares(ctx context.Context) ([]models.Share, error) {
	return s.store.ListShares(ctx)
}
