package plan_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfmachado/backoffice/internal/plan"
)

func TestLookupPrice(t *testing.T) {
	table := []plan.PriceBracket{
		{MinAge: 0, MaxAge: 17, Beneficiary: plan.BeneficiaryBoth, AmountCents: 10000},
		{MinAge: 18, MaxAge: 58, Beneficiary: plan.BeneficiaryTitular, AmountCents: 20000},
		{MinAge: 18, MaxAge: 58, Beneficiary: plan.BeneficiaryDependent, AmountCents: 18000},
		{MinAge: 59, MaxAge: 200, Beneficiary: plan.BeneficiaryBoth, AmountCents: 35000},
	}

	type testCase struct {
		name        string
		age         int
		beneficiary plan.BeneficiaryType
		want        int64
		wantErr     bool
	}

	tests := []testCase{
		{name: "ChildEitherType", age: 10, beneficiary: plan.BeneficiaryDependent, want: 10000},
		{name: "AdultTitular", age: 30, beneficiary: plan.BeneficiaryTitular, want: 20000},
		{name: "AdultDependent", age: 30, beneficiary: plan.BeneficiaryDependent, want: 18000},
		{name: "BracketBoundaryLow", age: 18, beneficiary: plan.BeneficiaryTitular, want: 20000},
		{name: "BracketBoundaryHigh", age: 58, beneficiary: plan.BeneficiaryTitular, want: 20000},
		{name: "Elderly", age: 75, beneficiary: plan.BeneficiaryTitular, want: 35000},
		{name: "NoBracketForAge", age: 300, beneficiary: plan.BeneficiaryTitular, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := plan.LookupPrice(table, tt.age, tt.beneficiary)

			if tt.wantErr {
				var pricingErr *plan.PricingError

				require.ErrorAs(t, err, &pricingErr)
				assert.Equal(t, tt.age, pricingErr.Age)
				assert.Equal(t, tt.beneficiary, pricingErr.Beneficiary)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupPrice_EmptyTable(t *testing.T) {
	_, err := plan.LookupPrice(nil, 30, plan.BeneficiaryTitular)

	var pricingErr *plan.PricingError

	assert.True(t, errors.As(err, &pricingErr))
}

func TestLookupPrice_OverlappingBracketsFirstWins(t *testing.T) {
	table := []plan.PriceBracket{
		{MinAge: 0, MaxAge: 100, Beneficiary: plan.BeneficiaryBoth, AmountCents: 5000},
		{MinAge: 18, MaxAge: 58, Beneficiary: plan.BeneficiaryTitular, AmountCents: 9999},
	}

	got, err := plan.LookupPrice(table, 30, plan.BeneficiaryTitular)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got)
}

func TestAdjustCents(t *testing.T) {
	type testCase struct {
		name       string
		cents      int64
		percentage float64
		want       int64
	}

	tests := []testCase{
		{name: "TwentyPercent", cents: 10000, percentage: 20, want: 12000},
		{name: "RoundsHalfUp", cents: 1005, percentage: 10, want: 1106}, // 1105.5 -> 1106
		{name: "Zero", cents: 0, percentage: 10, want: 0},
		{name: "NegativePercentage", cents: 10000, percentage: -10, want: 9000},
		{name: "FractionalPercentage", cents: 33333, percentage: 7.5, want: 35833}, // 35832.975
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plan.AdjustCents(tt.cents, tt.percentage))
		})
	}
}

// Two successive adjustments compound per step instead of adding percentages.
func TestAdjustCents_Compounds(t *testing.T) {
	once := plan.AdjustCents(10000, 10)
	twice := plan.AdjustCents(once, 10)

	assert.Equal(t, int64(11000), once)
	assert.Equal(t, int64(12100), twice)
}

func TestAge_CalendarYearOnly(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	// Born late in the year: the birthday has not happened yet, but the
	// calendar-year subtraction still counts the full year.
	born := time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 26, plan.Age(born, now))
}
