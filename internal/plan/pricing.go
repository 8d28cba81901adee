package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Age computes a beneficiary's age by calendar-year subtraction only.
// Month and day are deliberately ignored so a birthday never shifts the
// bracket mid-year; the operators' tables are priced per calendar year.
func Age(birthDate, now time.Time) int {
	return now.Year() - birthDate.Year()
}

// LookupPrice scans the table in stored order and returns the monthly price
// in cents of the first bracket covering the given age and beneficiary type.
// Brackets marked for both beneficiary types match either request. When no
// bracket covers the age, a *PricingError is returned; callers creating or
// updating enrollments must reject rather than defaulting to zero.
func LookupPrice(table []PriceBracket, age int, beneficiary BeneficiaryType) (int64, error) {
	for _, b := range table {
		if age < b.MinAge || age > b.MaxAge {
			continue
		}

		if b.Beneficiary == BeneficiaryBoth || b.Beneficiary == beneficiary {
			return b.AmountCents, nil
		}
	}

	return 0, &PricingError{Age: age, Beneficiary: beneficiary}
}

// AdjustCents applies a percentage increase to an amount in cents, rounding
// half away from zero to the whole cent. Applying 10% twice compounds
// (x1.1 then x1.1), each step rounded independently.
func AdjustCents(cents int64, percentage float64) int64 {
	multiplier := decimal.NewFromFloat(percentage).
		Div(decimal.NewFromInt(100)).
		Add(decimal.NewFromInt(1))

	return decimal.NewFromInt(cents).Mul(multiplier).Round(0).IntPart()
}
