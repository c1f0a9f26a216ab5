package models

import "github.com/shopspring/decimal"

// Participant records that a user is part of an expense's split.
// The (ExpenseName, UserName) pair is the composite key; a participant row
// does not imply a share row exists for the same pair.
type Participant struct {
	ExpenseName string `json:"expenseName"`
	UserName    string `json:"userName"`
}

// Share is the explicit percentage or amount recorded for a user on an
// expense. Percentage is read for PERCENTAGE splits, Amount for MANUAL
// splits; the other field is ignored.
type Share struct {
	ExpenseName string          `json:"expenseName"`
	UserName    string          `json:"userName"`
	Percentage  decimal.Decimal `json:"percentage"`
	Amount      decimal.Decimal `json:"amount"`
}

// ShareResult is the signed balance of one user on one expense.
// Positive means the expense's participants owe this amount to the user;
// negative means the user owes it.
type ShareResult struct {
	ExpenseDate string          `json:"expenseDate"`
	GroupName   string          `json:"groupName"`
	ExpenseName string          `json:"expenseName"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedBy   string          `json:"createdBy"`
	SplitType   SplitType       `json:"split_type"`
	Share       decimal.Decimal `json:"share"`
}
