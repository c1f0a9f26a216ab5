package calculator

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// ExpenseContext carries one expense plus the per-user data needed to
// compute the queried user's balance on it.
type ExpenseContext struct {
	Expense models.Expense

	// ParticipantCount is the number of participant rows for the expense,
	// including the creator when the creator is also a participant.
	ParticipantCount int64

	// Share is the queried user's share row, nil when none exists.
	Share *models.Share
}

// UserBalance computes the signed share of userName on one expense.
//
// The creator is credited the total minus their own share — what everyone
// else owes them. This deliberately does not exclude the creator's own
// consumption from the credit; the accounting model treats the creator's
// share as already settled. Every other participant is debited their share.
func UserBalance(userName string, ec ExpenseContext) (models.ShareResult, error) {
	e := ec.Expense

	policy, err := PolicyFor(e.SplitType, ec.ParticipantCount, ec.Share)
	if err != nil {
		return models.ShareResult{}, err
	}

	share, err := policy.Share(e.TotalAmount)
	if err != nil {
		return models.ShareResult{}, fmt.Errorf("expense %q: %w", e.ExpenseName, err)
	}

	if e.CreatedBy == userName {
		share = e.TotalAmount.Sub(share)
	} else {
		share = share.Neg()
	}

	return models.ShareResult{
		ExpenseDate: e.ExpenseDate,
		GroupName:   e.GroupName,
		ExpenseName: e.ExpenseName,
		TotalAmount: e.TotalAmount,
		CreatedBy:   e.CreatedBy,
		SplitType:   e.SplitType,
		Share:       share,
	}, nil
}

// UserBalances computes the signed share of userName across every expense
// the user participates in, one result per expense, in input order.
func UserBalances(userName string, expenses []ExpenseContext) ([]models.ShareResult, error) {
	results := make([]models.ShareResult, 0, len(expenses))
	for _, ec := range expenses {
		result, err := UserBalance(userName, ec)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
