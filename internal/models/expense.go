package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitType is the policy governing how an expense's total is divided
// among its participants.
type SplitType string

const (
	// SplitEqual divides the total equally among all participants.
	SplitEqual SplitType = "EQUAL"

	// SplitPercentage divides the total by recorded per-user percentages.
	SplitPercentage SplitType = "PERCENTAGE"

	// SplitManual uses per-user amounts recorded explicitly.
	SplitManual SplitType = "MANUAL"
)

// ParseSplitType validates s against the closed set of split types.
func ParseSplitType(s string) (SplitType, error) {
	switch SplitType(s) {
	case SplitEqual, SplitPercentage, SplitManual:
		return SplitType(s), nil
	}
	return "", fmt.Errorf("unknown split type %q", s)
}

// Expense represents a single named expense to be split among participants.
//
// Expenses are immutable once created. ExpenseName is globally unique and is
// the key participants and shares reference, not the surrogate ID.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// ExpenseDate is the calendar date of the expense, formatted YYYY-MM-DD.
	ExpenseDate string `json:"expenseDate"`

	// GroupName is the display name of the group the expense belongs to.
	GroupName string `json:"groupName"`

	// ExpenseName is the unique name identifying this expense.
	ExpenseName string `json:"expenseName"`

	// TotalAmount is the total expense amount, two decimal digits.
	TotalAmount decimal.Decimal `json:"totalAmount"`

	// SplitType selects the split policy for this expense.
	SplitType SplitType `json:"split_type"`

	// CreatedBy is the name of the user who created (paid) the expense.
	CreatedBy string `json:"createdBy"`
}
