package plan

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=plan
type Repository interface {
	CreatePlan(ctx context.Context, p *Plan) error
	GetPlan(ctx context.Context, id uuid.UUID) (*Plan, error)
	ListPlans(ctx context.Context, filter ListFilter) ([]*Plan, error)
	UpdatePlan(ctx context.Context, p *Plan) error
	DeletePlan(ctx context.Context, id uuid.UUID) error

	BeginAdjustment(ctx context.Context) (AdjustmentTx, error)
}

// AdjustmentTx is the unit of work for a price adjustment: the plan update
// and every enrollment recalculation commit or roll back together.
type AdjustmentTx interface {
	GetPlan(ctx context.Context, id uuid.UUID) (*Plan, error)
	UpdatePlan(ctx context.Context, p *Plan) error
	ActiveEnrollments(ctx context.Context, planID uuid.UUID) ([]*EnrolledBeneficiary, error)
	UpdateEnrollmentCost(ctx context.Context, enrollmentID uuid.UUID, monthlyCostCents, retroactiveDiffCents int64) error
	Commit() error
	Rollback() error
}

// EnrolledBeneficiary is the view of an active enrollment the adjustment
// engine needs to reprice it.
type EnrolledBeneficiary struct {
	EnrollmentID         uuid.UUID
	BirthDate            time.Time
	Beneficiary          BeneficiaryType
	MonthlyCostCents     int64
	RetroactiveDiffCents int64
}

// PricingPolicy decides what happens when an enrollment no longer matches any
// bracket after an adjustment: keep it priced via the raw multiplier, or fail
// the whole adjustment.
type PricingPolicy string

const (
	PricingPolicyFallback PricingPolicy = "fallback"
	PricingPolicyStrict   PricingPolicy = "strict"
)

type Service struct {
	repo   Repository
	policy PricingPolicy
	now    func() time.Time
}

func NewService(repo Repository, policy PricingPolicy) *Service {
	if policy == "" {
		policy = PricingPolicyFallback
	}

	return &Service{repo: repo, policy: policy, now: time.Now}
}

type CreateParams struct {
	Kind       Kind
	Operator   string
	Name       string
	BillingDay int
	PriceTable []PriceBracket
}

type ListFilter struct {
	Kind     *Kind
	Operator *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Plan, error) {
	if params.BillingDay < 1 || params.BillingDay > 31 {
		return nil, fmt.Errorf("%w: billing day must be between 1 and 31", ErrInvalidPlan)
	}

	p := &Plan{
		Kind:       params.Kind,
		Operator:   params.Operator,
		Name:       params.Name,
		BillingDay: params.BillingDay,
		PriceTable: params.PriceTable,
	}
	if err := s.repo.CreatePlan(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Plan, error) {
	return s.repo.GetPlan(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Plan, error) {
	return s.repo.ListPlans(ctx, filter)
}

func (s *Service) Update(ctx context.Context, p *Plan) error {
	return s.repo.UpdatePlan(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePlan(ctx, id)
}

type AdjustParams struct {
	Percentage        float64
	ApplyRetroactive  bool
	RetroactiveMonths int
}

// ApplyAdjustment raises every bracket of the plan by the given percentage
// and reprices all active enrollments against the new table. The previous
// table is snapshotted on the plan for audit reference. When retroactive
// months are requested, the price difference accrues on each enrollment until
// the next billing run folds it into an invoice.
func (s *Service) ApplyAdjustment(ctx context.Context, planID uuid.UUID, params AdjustParams) (*Plan, error) {
	atx, err := s.repo.BeginAdjustment(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin adjustment: %w", err)
	}
	defer atx.Rollback()

	p, err := atx.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	p.LastAdjustment = &Adjustment{
		Date:          s.now(),
		Percentage:    params.Percentage,
		PreviousTable: slices.Clone(p.PriceTable),
	}

	for i := range p.PriceTable {
		p.PriceTable[i].AmountCents = AdjustCents(p.PriceTable[i].AmountCents, params.Percentage)
	}

	if err := atx.UpdatePlan(ctx, p); err != nil {
		return nil, fmt.Errorf("updating plan: %w", err)
	}

	enrollments, err := atx.ActiveEnrollments(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("listing active enrollments: %w", err)
	}

	now := s.now()

	for _, e := range enrollments {
		newPrice, err := LookupPrice(p.PriceTable, Age(e.BirthDate, now), e.Beneficiary)
		if err != nil {
			if s.policy == PricingPolicyStrict {
				return nil, fmt.Errorf("repricing enrollment %s: %w", e.EnrollmentID, err)
			}

			// Keep the enrollment priced even without a bracket.
			newPrice = AdjustCents(e.MonthlyCostCents, params.Percentage)
		}

		diff := e.RetroactiveDiffCents
		if params.ApplyRetroactive && params.RetroactiveMonths > 0 {
			diff += (newPrice - e.MonthlyCostCents) * int64(params.RetroactiveMonths)
		}

		if err := atx.UpdateEnrollmentCost(ctx, e.EnrollmentID, newPrice, diff); err != nil {
			return nil, fmt.Errorf("updating enrollment %s: %w", e.EnrollmentID, err)
		}
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("commit adjustment: %w", err)
	}

	return p, nil
}

// PlanFailure records a plan that could not be adjusted during a batch run.
type PlanFailure struct {
	PlanID uuid.UUID
	Name   string
	Err    error
}

type OperatorAdjustResult struct {
	Adjusted []*Plan
	Failed   []PlanFailure
}

// AdjustByOperator applies the same adjustment to every plan whose operator
// matches case-insensitively. Each plan is its own unit of work: one plan
// failing does not roll back or stop the others.
func (s *Service) AdjustByOperator(ctx context.Context, operator string, params AdjustParams) (*OperatorAdjustResult, error) {
	plans, err := s.repo.ListPlans(ctx, ListFilter{Operator: &operator})
	if err != nil {
		return nil, fmt.Errorf("listing plans for operator %q: %w", operator, err)
	}

	result := &OperatorAdjustResult{}

	for _, p := range plans {
		adjusted, err := s.ApplyAdjustment(ctx, p.ID, params)
		if err != nil {
			slog.Error("plan adjustment failed", "plan_id", p.ID, "plan", p.Name, "error", err)
			result.Failed = append(result.Failed, PlanFailure{PlanID: p.ID, Name: p.Name, Err: err})

			continue
		}

		result.Adjusted = append(result.Adjusted, adjusted)
	}

	return result, nil
}
