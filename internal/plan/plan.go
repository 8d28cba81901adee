package plan

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the two benefit plan families the back office manages.
type Kind string

const (
	KindHealth Kind = "health"
	KindDental Kind = "dental"
)

// BeneficiaryType says who a price bracket applies to. The values are kept in
// Portuguese for compatibility with the operators' price tables.
type BeneficiaryType string

const (
	BeneficiaryTitular   BeneficiaryType = "titular"
	BeneficiaryDependent BeneficiaryType = "dependente"
	BeneficiaryBoth      BeneficiaryType = "ambos"
)

// PriceBracket is a price tier keyed by age range and beneficiary type.
type PriceBracket struct {
	MinAge      int             `json:"min_age"`
	MaxAge      int             `json:"max_age"`
	Beneficiary BeneficiaryType `json:"beneficiary_type"`
	AmountCents int64           `json:"amount"`
}

// Adjustment records the last percentage adjustment applied to a plan,
// including a snapshot of the table it replaced. The snapshot is kept for
// audit reference only; there is no automated rollback.
type Adjustment struct {
	Date          time.Time      `json:"date"`
	Percentage    float64        `json:"percentage"`
	PreviousTable []PriceBracket `json:"previous_table"`
}

// Plan represents a health or dental benefit plan and its price table.
// Brackets are evaluated in stored order; the first match wins.
type Plan struct {
	ID             uuid.UUID
	Kind           Kind
	Operator       string
	Name           string
	BillingDay     int
	PriceTable     []PriceBracket
	LastAdjustment *Adjustment
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
}
