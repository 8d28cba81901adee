package plan

import (
	"time"

	"github.com/google/uuid"

	"github.com/rfmachado/backoffice/internal/plan"
)

type adjustmentResponse struct {
	Date          time.Time    `json:"date"`
	Percentage    float64      `json:"percentage"`
	PreviousTable []bracketDTO `json:"previous_table"`
}

type planResponse struct {
	ID             uuid.UUID           `json:"id"`
	Kind           plan.Kind           `json:"kind"`
	Operator       string              `json:"operator"`
	Name           string              `json:"name"`
	BillingDay     int                 `json:"billing_day"`
	PriceTable     []bracketDTO        `json:"price_table"`
	LastAdjustment *adjustmentResponse `json:"last_adjustment,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      *time.Time          `json:"updated_at,omitempty"`
}

func toBracketDTOs(table []plan.PriceBracket) []bracketDTO {
	dtos := make([]bracketDTO, len(table))
	for i, b := range table {
		dtos[i] = bracketDTO{
			MinAge:      b.MinAge,
			MaxAge:      b.MaxAge,
			Beneficiary: b.Beneficiary,
			Amount:      b.AmountCents,
		}
	}

	return dtos
}

func toResponse(p *plan.Plan) planResponse {
	resp := planResponse{
		ID:         p.ID,
		Kind:       p.Kind,
		Operator:   p.Operator,
		Name:       p.Name,
		BillingDay: p.BillingDay,
		PriceTable: toBracketDTOs(p.PriceTable),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	if p.LastAdjustment != nil {
		resp.LastAdjustment = &adjustmentResponse{
			Date:          p.LastAdjustment.Date,
			Percentage:    p.LastAdjustment.Percentage,
			PreviousTable: toBracketDTOs(p.LastAdjustment.PreviousTable),
		}
	}

	return resp
}

func toResponseList(plans []*plan.Plan) []planResponse {
	resp := make([]planResponse, len(plans))
	for i, p := range plans {
		resp[i] = toResponse(p)
	}

	return resp
}
