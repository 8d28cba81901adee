package plan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rfmachado/backoffice/internal/plan"
)

func twoBracketPlan(id uuid.UUID) *plan.Plan {
	return &plan.Plan{
		ID:         id,
		Kind:       plan.KindHealth,
		Operator:   "Unimed",
		Name:       "Essencial",
		BillingDay: 10,
		PriceTable: []plan.PriceBracket{
			{MinAge: 0, MaxAge: 17, Beneficiary: plan.BeneficiaryBoth, AmountCents: 10000},
			{MinAge: 18, MaxAge: 200, Beneficiary: plan.BeneficiaryBoth, AmountCents: 20000},
		},
	}
}

func TestService_ApplyAdjustment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := plan.NewMockRepository(ctrl)
	atx := plan.NewMockAdjustmentTx(ctrl)
	svc := plan.NewService(repo, plan.PricingPolicyFallback)

	planID := uuid.New()
	p := twoBracketPlan(planID)

	// Dependent born ten years ago: priced at the child bracket.
	child := &plan.EnrolledBeneficiary{
		EnrollmentID:     uuid.New(),
		BirthDate:        time.Now().AddDate(-10, 0, 0),
		Beneficiary:      plan.BeneficiaryDependent,
		MonthlyCostCents: 10000,
	}

	repo.EXPECT().BeginAdjustment(gomock.Any()).Return(atx, nil)
	atx.EXPECT().GetPlan(gomock.Any(), planID).Return(p, nil)
	atx.EXPECT().UpdatePlan(gomock.Any(), p).Return(nil)
	atx.EXPECT().ActiveEnrollments(gomock.Any(), planID).Return([]*plan.EnrolledBeneficiary{child}, nil)
	atx.EXPECT().UpdateEnrollmentCost(gomock.Any(), child.EnrollmentID, int64(12000), int64(0)).Return(nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(nil)

	got, err := svc.ApplyAdjustment(context.Background(), planID, plan.AdjustParams{Percentage: 20})
	require.NoError(t, err)

	// Brackets become 120.00 / 240.00 and the previous table is snapshotted.
	assert.Equal(t, int64(12000), got.PriceTable[0].AmountCents)
	assert.Equal(t, int64(24000), got.PriceTable[1].AmountCents)
	require.NotNil(t, got.LastAdjustment)
	assert.Equal(t, 20.0, got.LastAdjustment.Percentage)
	assert.Equal(t, int64(10000), got.LastAdjustment.PreviousTable[0].AmountCents)
	assert.Equal(t, int64(20000), got.LastAdjustment.PreviousTable[1].AmountCents)
}

func TestService_ApplyAdjustment_RetroactiveAccumulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := plan.NewMockRepository(ctrl)
	atx := plan.NewMockAdjustmentTx(ctrl)
	svc := plan.NewService(repo, plan.PricingPolicyFallback)

	planID := uuid.New()

	// A previous retroactive adjustment left 500 cents accrued.
	adult := &plan.EnrolledBeneficiary{
		EnrollmentID:         uuid.New(),
		BirthDate:            time.Now().AddDate(-30, 0, 0),
		Beneficiary:          plan.BeneficiaryTitular,
		MonthlyCostCents:     20000,
		RetroactiveDiffCents: 500,
	}

	repo.EXPECT().BeginAdjustment(gomock.Any()).Return(atx, nil)
	atx.EXPECT().GetPlan(gomock.Any(), planID).Return(twoBracketPlan(planID), nil)
	atx.EXPECT().UpdatePlan(gomock.Any(), gomock.Any()).Return(nil)
	atx.EXPECT().ActiveEnrollments(gomock.Any(), planID).Return([]*plan.EnrolledBeneficiary{adult}, nil)
	// New price 22000, diff (22000-20000)*3 = 6000 added to the accrued 500.
	atx.EXPECT().UpdateEnrollmentCost(gomock.Any(), adult.EnrollmentID, int64(22000), int64(6500)).Return(nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(nil)

	_, err := svc.ApplyAdjustment(context.Background(), planID, plan.AdjustParams{
		Percentage:        10,
		ApplyRetroactive:  true,
		RetroactiveMonths: 3,
	})
	require.NoError(t, err)
}

func TestService_ApplyAdjustment_FallbackWhenNoBracket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := plan.NewMockRepository(ctrl)
	atx := plan.NewMockAdjustmentTx(ctrl)
	svc := plan.NewService(repo, plan.PricingPolicyFallback)

	planID := uuid.New()
	p := twoBracketPlan(planID)
	// Table only covers titulars after the adjustment test tweak below.
	p.PriceTable = []plan.PriceBracket{
		{MinAge: 0, MaxAge: 200, Beneficiary: plan.BeneficiaryTitular, AmountCents: 20000},
	}

	dependent := &plan.EnrolledBeneficiary{
		EnrollmentID:     uuid.New(),
		BirthDate:        time.Now().AddDate(-30, 0, 0),
		Beneficiary:      plan.BeneficiaryDependent,
		MonthlyCostCents: 15000,
	}

	repo.EXPECT().BeginAdjustment(gomock.Any()).Return(atx, nil)
	atx.EXPECT().GetPlan(gomock.Any(), planID).Return(p, nil)
	atx.EXPECT().UpdatePlan(gomock.Any(), gomock.Any()).Return(nil)
	atx.EXPECT().ActiveEnrollments(gomock.Any(), planID).Return([]*plan.EnrolledBeneficiary{dependent}, nil)
	// No bracket for dependents: old price times the multiplier.
	atx.EXPECT().UpdateEnrollmentCost(gomock.Any(), dependent.EnrollmentID, int64(16500), int64(0)).Return(nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(nil)

	_, err := svc.ApplyAdjustment(context.Background(), planID, plan.AdjustParams{Percentage: 10})
	require.NoError(t, err)
}

func TestService_ApplyAdjustment_StrictFailsWhenNoBracket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := plan.NewMockRepository(ctrl)
	atx := plan.NewMockAdjustmentTx(ctrl)
	svc := plan.NewService(repo, plan.PricingPolicyStrict)

	planID := uuid.New()
	p := twoBracketPlan(planID)
	p.PriceTable = []plan.PriceBracket{
		{MinAge: 0, MaxAge: 200, Beneficiary: plan.BeneficiaryTitular, AmountCents: 20000},
	}

	dependent := &plan.EnrolledBeneficiary{
		EnrollmentID:     uuid.New(),
		BirthDate:        time.Now().AddDate(-30, 0, 0),
		Beneficiary:      plan.BeneficiaryDependent,
		MonthlyCostCents: 15000,
	}

	repo.EXPECT().BeginAdjustment(gomock.Any()).Return(atx, nil)
	atx.EXPECT().GetPlan(gomock.Any(), planID).Return(p, nil)
	atx.EXPECT().UpdatePlan(gomock.Any(), gomock.Any()).Return(nil)
	atx.EXPECT().ActiveEnrollments(gomock.Any(), planID).Return([]*plan.EnrolledBeneficiary{dependent}, nil)
	atx.EXPECT().Rollback().Return(nil)

	_, err := svc.ApplyAdjustment(context.Background(), planID, plan.AdjustParams{Percentage: 10})

	var pricingErr *plan.PricingError

	require.ErrorAs(t, err, &pricingErr)
}

func TestService_ApplyAdjustment_PlanNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := plan.NewMockRepository(ctrl)
	atx := plan.NewMockAdjustmentTx(ctrl)
	svc := plan.NewService(repo, plan.PricingPolicyFallback)

	planID := uuid.New()

	repo.EXPECT().BeginAdjustment(gomock.Any()).Return(atx, nil)
	atx.EXPECT().GetPlan(gomock.Any(), planID).Return(nil, plan.ErrNotFound)
	atx.EXPECT().Rollback().Return(nil)

	_, err := svc.ApplyAdjustment(context.Background(), planID, plan.AdjustParams{Percentage: 10})
	assert.ErrorIs(t, err, plan.ErrNotFound)
}

func TestService_AdjustByOperator_ContinuesOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := plan.NewMockRepository(ctrl)
	svc := plan.NewService(repo, plan.PricingPolicyFallback)

	broken := twoBracketPlan(uuid.New())
	healthy := twoBracketPlan(uuid.New())
	operator := "unimed"

	repo.EXPECT().
		ListPlans(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter plan.ListFilter) ([]*plan.Plan, error) {
			require.NotNil(t, filter.Operator)
			assert.Equal(t, operator, *filter.Operator)
			return []*plan.Plan{broken, healthy}, nil
		})

	// First plan fails at BeginAdjustment, second goes through.
	repo.EXPECT().BeginAdjustment(gomock.Any()).Return(nil, errors.New("db down"))

	atx := plan.NewMockAdjustmentTx(ctrl)
	repo.EXPECT().BeginAdjustment(gomock.Any()).Return(atx, nil)
	atx.EXPECT().GetPlan(gomock.Any(), healthy.ID).Return(healthy, nil)
	atx.EXPECT().UpdatePlan(gomock.Any(), gomock.Any()).Return(nil)
	atx.EXPECT().ActiveEnrollments(gomock.Any(), healthy.ID).Return(nil, nil)
	atx.EXPECT().Commit().Return(nil)
	atx.EXPECT().Rollback().Return(nil)

	result, err := svc.AdjustByOperator(context.Background(), operator, plan.AdjustParams{Percentage: 5})
	require.NoError(t, err)
	assert.Len(t, result.Adjusted, 1)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, broken.ID, result.Failed[0].PlanID)
}

func TestService_Create_InvalidBillingDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := plan.NewMockRepository(ctrl)
	svc := plan.NewService(repo, plan.PricingPolicyFallback)

	_, err := svc.Create(context.Background(), plan.CreateParams{
		Kind:       plan.KindHealth,
		Operator:   "Unimed",
		Name:       "Essencial",
		BillingDay: 0,
	})
	assert.ErrorIs(t, err, plan.ErrInvalidPlan)
}
