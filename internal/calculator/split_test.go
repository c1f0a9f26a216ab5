package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		participants int64
		want         string
		wantErr      error
	}{
		{name: "even division", total: "90.00", participants: 3, want: "30.00"},
		{name: "rounds half-up", total: "100.00", participants: 3, want: "33.33"},
		{name: "half cent rounds up", total: "0.25", participants: 2, want: "0.13"},
		{name: "single participant", total: "42.50", participants: 1, want: "42.50"},
		{name: "zero participants", total: "10.00", participants: 0, wantErr: ErrInvalidDivisor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EqualSplit{Participants: tt.participants}.Share(dec(t, tt.total))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Share() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Share() error = %v", err)
			}
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("Share() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPercentageSplit(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		percentage string
		want       string
	}{
		{name: "thirty percent of rent", total: "1000.00", percentage: "30", want: "300.00"},
		{name: "rounds half-up", total: "10.01", percentage: "33.33", want: "3.34"},
		{name: "zero percentage", total: "500.00", percentage: "0", want: "0.00"},
		{name: "over one hundred percent allowed", total: "100.00", percentage: "150", want: "150.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentageSplit{Percentage: dec(t, tt.percentage)}.Share(dec(t, tt.total))
			if err != nil {
				t.Fatalf("Share() error = %v", err)
			}
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("Share() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestManualSplit(t *testing.T) {
	got, err := ManualSplit{Amount: dec(t, "12.34")}.Share(dec(t, "99.99"))
	if err != nil {
		t.Fatalf("Share() error = %v", err)
	}
	if !got.Equal(dec(t, "12.34")) {
		t.Errorf("Share() = %s, want 12.34", got)
	}
}

func TestPolicyFor(t *testing.T) {
	share := &models.Share{Percentage: dec(t, "25"), Amount: dec(t, "7.50")}

	t.Run("percentage without share row is zero", func(t *testing.T) {
		policy, err := PolicyFor(models.SplitPercentage, 2, nil)
		if err != nil {
			t.Fatalf("PolicyFor() error = %v", err)
		}
		got, err := policy.Share(dec(t, "100.00"))
		if err != nil {
			t.Fatalf("Share() error = %v", err)
		}
		if !got.IsZero() {
			t.Errorf("Share() = %s, want 0", got)
		}
	})

	t.Run("manual without share row is zero", func(t *testing.T) {
		policy, err := PolicyFor(models.SplitManual, 2, nil)
		if err != nil {
			t.Fatalf("PolicyFor() error = %v", err)
		}
		got, err := policy.Share(dec(t, "100.00"))
		if err != nil {
			t.Fatalf("Share() error = %v", err)
		}
		if !got.IsZero() {
			t.Errorf("Share() = %s, want 0", got)
		}
	})

	t.Run("percentage reads percentage field", func(t *testing.T) {
		policy, err := PolicyFor(models.SplitPercentage, 2, share)
		if err != nil {
			t.Fatalf("PolicyFor() error = %v", err)
		}
		got, _ := policy.Share(dec(t, "100.00"))
		if !got.Equal(dec(t, "25.00")) {
			t.Errorf("Share() = %s, want 25.00", got)
		}
	})

	t.Run("manual reads amount field", func(t *testing.T) {
		policy, err := PolicyFor(models.SplitManual, 2, share)
		if err != nil {
			t.Fatalf("PolicyFor() error = %v", err)
		}
		got, _ := policy.Share(dec(t, "100.00"))
		if !got.Equal(dec(t, "7.50")) {
			t.Errorf("Share() = %s, want 7.50", got)
		}
	})

	t.Run("unknown split type errors", func(t *testing.T) {
		if _, err := PolicyFor(models.SplitType("WEIGHTED"), 2, nil); err == nil {
			t.Error("PolicyFor() expected error for unknown split type")
		}
	})
}
