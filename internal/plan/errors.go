package plan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("plan not found")
	ErrInvalidPlan = errors.New("invalid plan")
)

// PricingError reports that no price bracket covers a beneficiary.
type PricingError struct {
	Age         int
	Beneficiary BeneficiaryType
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("no price bracket for age %d and beneficiary type %q", e.Age, e.Beneficiary)
}
