// Package calculator implements the split policies and signed balance math.
// It is pure: callers resolve expenses, participant counts, and share rows
// from storage and hand them in.
package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrInvalidDivisor is returned for an EQUAL split over zero participants.
var ErrInvalidDivisor = errors.New("expense has no participants to divide among")

var hundred = decimal.NewFromInt(100)

// SplitPolicy computes the magnitude of one participant's share of an
// expense total. Each implementation carries only the data its policy needs.
type SplitPolicy interface {
	// Share returns the unsigned share, rounded half-up to two decimals.
	Share(total decimal.Decimal) (decimal.Decimal, error)
}

// EqualSplit divides the total equally among all participants.
type EqualSplit struct {
	Participants int64
}

func (p EqualSplit) Share(total decimal.Decimal) (decimal.Decimal, error) {
	if p.Participants == 0 {
		return decimal.Zero, ErrInvalidDivisor
	}
	return total.DivRound(decimal.NewFromInt(p.Participants), 2), nil
}

// PercentageSplit takes a recorded percentage of the total.
type PercentageSplit struct {
	Percentage decimal.Decimal
}

func (p PercentageSplit) Share(total decimal.Decimal) (decimal.Decimal, error) {
	return total.Mul(p.Percentage).DivRound(hundred, 2), nil
}

// ManualSplit uses the recorded amount as-is.
type ManualSplit struct {
	Amount decimal.Decimal
}

func (p ManualSplit) Share(total decimal.Decimal) (decimal.Decimal, error) {
	return p.Amount, nil
}

// PolicyFor builds the split policy for one user on one expense from the
// stored split type, the expense's participant count, and the user's share
// row. A nil share row means a zero share, not an error.
func PolicyFor(splitType models.SplitType, participantCount int64, share *models.Share) (SplitPolicy, error) {
	switch splitType {
	case models.SplitEqual:
		return EqualSplit{Participants: participantCount}, nil
	case models.SplitPercentage:
		pct := decimal.Zero
		if share != nil {
			pct = share.Percentage
		}
		return PercentageSplit{Percentage: pct}, nil
	case models.SplitManual:
		amount := decimal.Zero
		if share != nil {
			amount = share.Amount
		}
		return ManualSplit{Amount: amount}, nil
	}
	return nil, fmt.Errorf("unknown split type %q", splitType)
}
