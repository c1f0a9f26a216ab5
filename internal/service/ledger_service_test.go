package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

// setupService creates a LedgerService backed by a temp SQLite database.
func setupService(t *testing.T) *LedgerService {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "splitledger-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(store)
}

func mustCreateUser(t *testing.T, svc *LedgerService, name string) {
	t.Helper()
	if _, err := svc.CreateUser(context.Background(), name); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
}

func TestCreateUser(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("creates and trims name", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, "  alice  ")
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.Name != "alice" {
			t.Errorf("Name = %q, want alice", user.Name)
		}
		if user.ID == "" {
			t.Error("expected generated ID")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "   ")
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "alice")
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})
}

func TestCreateExpense(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateUser(t, svc, "alice")

	valid := CreateExpenseInput{
		ExpenseDate: "2024-05-01",
		GroupName:   "friends",
		ExpenseName: "Dinner",
		TotalAmount: decimal.RequireFromString("90.00"),
		SplitType:   "EQUAL",
		CreatedBy:   "alice",
	}

	t.Run("creates with known creator", func(t *testing.T) {
		expense, err := svc.CreateExpense(ctx, valid)
		if err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" {
			t.Error("expected generated ID")
		}
	})

	t.Run("rejects unknown creator", func(t *testing.T) {
		in := valid
		in.ExpenseName = "Taxi"
		in.CreatedBy = "nobody"
		_, err := svc.CreateExpense(ctx, in)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rejects duplicate expense name", func(t *testing.T) {
		_, err := svc.CreateExpense(ctx, valid)
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("rejects bad split type", func(t *testing.T) {
		in := valid
		in.ExpenseName = "Taxi"
		in.SplitType = "WEIGHTED"
		_, err := svc.CreateExpense(ctx, in)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("rejects bad date", func(t *testing.T) {
		in := valid
		in.ExpenseName = "Taxi"
		in.ExpenseDate = "May 1st"
		_, err := svc.CreateExpense(ctx, in)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestUserBalances_EqualSplit(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "carol"} {
		mustCreateUser(t, svc, name)
	}

	_, err := svc.CreateExpense(ctx, CreateExpenseInput{
		ExpenseDate: "2024-05-01",
		GroupName:   "friends",
		ExpenseName: "Dinner",
		TotalAmount: decimal.RequireFromString("90.00"),
		SplitType:   "EQUAL",
		CreatedBy:   "alice",
	})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if err := svc.AddParticipants(ctx, "Dinner", []string{"alice", "bob", "carol"}); err != nil {
		t.Fatalf("AddParticipants failed: %v", err)
	}

	tests := []struct {
		user string
		want string
	}{
		{user: "alice", want: "60.00"},
		{user: "bob", want: "-30.00"},
		{user: "carol", want: "-30.00"},
	}
	for _, tt := range tests {
		results, err := svc.UserBalances(ctx, tt.user)
		if err != nil {
			t.Fatalf("UserBalances(%s) failed: %v", tt.user, err)
		}
		if len(results) != 1 {
			t.Fatalf("UserBalances(%s) returned %d results, want 1", tt.user, len(results))
		}
		if !results[0].Share.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("UserBalances(%s) share = %s, want %s", tt.user, results[0].Share, tt.want)
		}
	}
}

func TestUserBalances_PercentageSplit(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	mustCreateUser(t, svc, "alice")
	mustCreateUser(t, svc, "bob")

	_, err := svc.CreateExpense(ctx, CreateExpenseInput{
		ExpenseDate: "2024-05-01",
		GroupName:   "flat",
		ExpenseName: "Rent",
		TotalAmount: decimal.RequireFromString("1000.00"),
		SplitType:   "PERCENTAGE",
		CreatedBy:   "alice",
	})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if err := svc.AddParticipants(ctx, "Rent", []string{"alice", "bob"}); err != nil {
		t.Fatalf("AddParticipants failed: %v", err)
	}
	err = svc.SetShares(ctx, "Rent", []ShareInput{
		{UserName: "bob", Percentage: decimal.RequireFromString("30")},
	})
	if err != nil {
		t.Fatalf("SetShares failed: %v", err)
	}

	bob, err := svc.UserBalances(ctx, "bob")
	if err != nil {
		t.Fatalf("UserBalances(bob) failed: %v", err)
	}
	if !bob[0].Share.Equal(decimal.RequireFromString("-300.00")) {
		t.Errorf("bob's share = %s, want -300.00", bob[0].Share)
	}

	// No share row for alice: her own share is zero, so she is credited the
	// full total.
	alice, err := svc.UserBalances(ctx, "alice")
	if err != nil {
		t.Fatalf("UserBalances(alice) failed: %v", err)
	}
	if !alice[0].Share.Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("alice's share = %s, want 1000.00", alice[0].Share)
	}
}

func TestUserBalances_ManualSplit(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	mustCreateUser(t, svc, "alice")
	mustCreateUser(t, svc, "bob")

	_, err := svc.CreateExpense(ctx, CreateExpenseInput{
		ExpenseDate: "2024-05-03",
		GroupName:   "flat",
		ExpenseName: "Groceries",
		TotalAmount: decimal.RequireFromString("75.40"),
		SplitType:   "MANUAL",
		CreatedBy:   "alice",
	})
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	if err := svc.AddParticipants(ctx, "Groceries", []string{"alice", "bob"}); err != nil {
		t.Fatalf("AddParticipants failed: %v", err)
	}
	err = svc.SetShares(ctx, "Groceries", []ShareInput{
		{UserName: "bob", Amount: decimal.RequireFromString("25.40")},
	})
	if err != nil {
		t.Fatalf("SetShares failed: %v", err)
	}

	bob, err := svc.UserBalances(ctx, "bob")
	if err != nil {
		t.Fatalf("UserBalances(bob) failed: %v", err)
	}
	if !bob[0].Share.Equal(decimal.RequireFromString("-25.40")) {
		t.Errorf("bob's share = %s, want -25.40", bob[0].Share)
	}
}

func TestUserBalances_NoParticipation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	mustCreateUser(t, svc, "alice")

	results, err := svc.UserBalances(ctx, "alice")
	if err != nil {
		t.Fatalf("UserBalances failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
