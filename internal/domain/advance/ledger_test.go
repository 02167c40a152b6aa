package advance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	adv := New("emp-1", "comp-1", d("10000"), true, nil, now)

	assert.Equal(t, StatusApproved, adv.Status)
	assert.True(t, adv.OriginalAmount.Equal(d("10000")))
	assert.True(t, adv.RemainingAmount.Equal(d("10000")))
	assert.True(t, adv.CarryForward)
	assert.Equal(t, now, adv.Date)
	assert.Empty(t, adv.Deductions)
}

func TestDeductPartial(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("carry forward advance transitions to carried-forward", func(t *testing.T) {
		adv := New("emp-1", "comp-1", d("10000"), true, nil, now)

		require.NoError(t, adv.DeductPartial(d("4000"), now))

		assert.True(t, adv.RemainingAmount.Equal(d("6000")))
		assert.Equal(t, StatusCarriedForward, adv.Status)
		require.Len(t, adv.Deductions, 1)
		assert.True(t, adv.Deductions[0].Amount.Equal(d("4000")))
	})

	t.Run("non carry forward advance stays approved", func(t *testing.T) {
		adv := New("emp-1", "comp-1", d("10000"), false, nil, now)

		require.NoError(t, adv.DeductPartial(d("4000"), now))

		assert.Equal(t, StatusApproved, adv.Status)
	})

	t.Run("deducting the exact remaining balance closes the advance", func(t *testing.T) {
		adv := New("emp-1", "comp-1", d("10000"), true, nil, now)

		require.NoError(t, adv.DeductPartial(d("10000"), now))

		assert.Equal(t, StatusDeducted, adv.Status)
		assert.True(t, adv.RemainingAmount.IsZero())
	})

	t.Run("original amount never changes", func(t *testing.T) {
		adv := New("emp-1", "comp-1", d("10000"), true, nil, now)

		require.NoError(t, adv.DeductPartial(d("4000"), now))
		require.NoError(t, adv.DeductPartial(d("1500.50"), now))

		assert.True(t, adv.OriginalAmount.Equal(d("10000")))

		// original - remaining always equals the summed history
		sum := decimal.Zero
		for _, ded := range adv.Deductions {
			sum = sum.Add(ded.Amount)
		}
		assert.True(t, adv.OriginalAmount.Sub(adv.RemainingAmount).Equal(sum))
	})
}

func TestDeductPartialRejections(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero amount", d("0")},
		{"negative amount", d("-100")},
		{"amount above remaining balance", d("10000.01")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			adv := New("emp-1", "comp-1", d("10000"), true, nil, now)
			before := adv

			err := adv.DeductPartial(c.amount, now)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			// a rejected deduction leaves the advance untouched
			assert.Equal(t, before.Status, adv.Status)
			assert.True(t, before.RemainingAmount.Equal(adv.RemainingAmount))
			assert.Len(t, adv.Deductions, 0)
		})
	}

	t.Run("already deducted advance rejects further deductions", func(t *testing.T) {
		adv := New("emp-1", "comp-1", d("100"), false, nil, now)
		require.NoError(t, adv.DeductPartial(d("100"), now))

		err := adv.DeductPartial(d("1"), now)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
	})
}

func TestMarkFullyDeducted(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	adv := New("emp-1", "comp-1", d("10000"), true, nil, now)
	require.NoError(t, adv.DeductPartial(d("4000"), now))

	require.NoError(t, adv.MarkFullyDeducted(now))

	assert.Equal(t, StatusDeducted, adv.Status)
	assert.True(t, adv.RemainingAmount.IsZero())
	require.Len(t, adv.Deductions, 2)
	assert.True(t, adv.Deductions[1].Amount.Equal(d("6000")))
	assert.Equal(t, "Full deduction", adv.Deductions[1].Note)

	assert.ErrorIs(t, adv.MarkFullyDeducted(now), ErrAlreadyDeducted)
}

func TestEligibleForCarryForward(t *testing.T) {
	ref := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		adv  Advance
		want bool
	}{
		{
			"approved flagged advance from a past month",
			Advance{Status: StatusApproved, CarryForward: true, Date: lastMonth},
			true,
		},
		{
			"advance dated in the current month",
			Advance{Status: StatusApproved, CarryForward: true, Date: thisMonth},
			false,
		},
		{
			"not flagged for carry forward",
			Advance{Status: StatusApproved, CarryForward: false, Date: lastMonth},
			false,
		},
		{
			"already carried forward",
			Advance{Status: StatusCarriedForward, CarryForward: true, Date: lastMonth},
			false,
		},
		{
			"fully deducted",
			Advance{Status: StatusDeducted, CarryForward: true, Date: lastMonth},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, EligibleForCarryForward(c.adv, ref))
		})
	}
}

func TestApplyCarryForward(t *testing.T) {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	adv := Advance{
		Status:       StatusApproved,
		CarryForward: true,
		Date:         time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	adv.ApplyCarryForward(now)

	assert.Equal(t, StatusCarriedForward, adv.Status)
	assert.Equal(t, now, adv.Date)
	// after the date reset a second sweep in the same month is a no-op
	assert.False(t, EligibleForCarryForward(adv, now))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-03", MonthKey(time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTotalDeductedLegacyFallback(t *testing.T) {
	// Rows imported without an original amount sum their history.
	adv := Advance{
		RemainingAmount: d("500"),
		Deductions: []Deduction{
			{Amount: d("200")},
			{Amount: d("300")},
		},
	}
	assert.True(t, adv.TotalDeducted().Equal(d("500")))
}
