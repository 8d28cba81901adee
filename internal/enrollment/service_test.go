package enrollment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rfmachado/backoffice/internal/collaborator"
	"github.com/rfmachado/backoffice/internal/enrollment"
	"github.com/rfmachado/backoffice/internal/plan"
)

func testPlan(id uuid.UUID) *plan.Plan {
	return &plan.Plan{
		ID:   id,
		Kind: plan.KindHealth,
		PriceTable: []plan.PriceBracket{
			{MinAge: 0, MaxAge: 17, Beneficiary: plan.BeneficiaryBoth, AmountCents: 10000},
			{MinAge: 18, MaxAge: 200, Beneficiary: plan.BeneficiaryBoth, AmountCents: 20000},
		},
	}
}

func TestService_Create_DependentPricedAtChildBracket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := enrollment.NewMockRepository(ctrl)
	plans := enrollment.NewMockPlanSource(ctrl)
	collaborators := enrollment.NewMockBeneficiarySource(ctrl)
	svc := enrollment.NewService(repo, plans, collaborators)

	planID := uuid.New()
	collaboratorID := uuid.New()
	dependentID := uuid.New()

	plans.EXPECT().Get(gomock.Any(), planID).Return(testPlan(planID), nil)
	collaborators.EXPECT().
		GetDependent(gomock.Any(), collaboratorID, dependentID).
		Return(&collaborator.Dependent{
			ID:             dependentID,
			CollaboratorID: collaboratorID,
			BirthDate:      time.Now().AddDate(-10, 0, 0),
		}, nil)
	repo.EXPECT().
		CreateEnrollment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *enrollment.Enrollment) error {
			e.ID = uuid.New()
			return nil
		})

	got, err := svc.Create(context.Background(), enrollment.CreateParams{
		CollaboratorID:         collaboratorID,
		DependentID:            &dependentID,
		FinancialResponsibleID: collaboratorID,
		PlanID:                 planID,
	})
	require.NoError(t, err)

	// Ten-year-old dependent lands in the 0-17 bracket at 100.00.
	assert.Equal(t, int64(10000), got.MonthlyCostCents)
	assert.Equal(t, enrollment.StatusActive, got.Status)
}

func TestService_Create_TitularPricedAtAdultBracket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := enrollment.NewMockRepository(ctrl)
	plans := enrollment.NewMockPlanSource(ctrl)
	collaborators := enrollment.NewMockBeneficiarySource(ctrl)
	svc := enrollment.NewService(repo, plans, collaborators)

	planID := uuid.New()
	collaboratorID := uuid.New()

	plans.EXPECT().Get(gomock.Any(), planID).Return(testPlan(planID), nil)
	collaborators.EXPECT().
		Get(gomock.Any(), collaboratorID).
		Return(&collaborator.Collaborator{
			ID:        collaboratorID,
			BirthDate: time.Now().AddDate(-35, 0, 0),
		}, nil)
	repo.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), enrollment.CreateParams{
		CollaboratorID:         collaboratorID,
		FinancialResponsibleID: collaboratorID,
		PlanID:                 planID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), got.MonthlyCostCents)
}

func TestService_Create_NoBracketRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := enrollment.NewMockRepository(ctrl)
	plans := enrollment.NewMockPlanSource(ctrl)
	collaborators := enrollment.NewMockBeneficiarySource(ctrl)
	svc := enrollment.NewService(repo, plans, collaborators)

	planID := uuid.New()
	collaboratorID := uuid.New()

	p := testPlan(planID)
	p.PriceTable = []plan.PriceBracket{
		{MinAge: 0, MaxAge: 17, Beneficiary: plan.BeneficiaryBoth, AmountCents: 10000},
	}

	plans.EXPECT().Get(gomock.Any(), planID).Return(p, nil)
	collaborators.EXPECT().
		Get(gomock.Any(), collaboratorID).
		Return(&collaborator.Collaborator{
			ID:        collaboratorID,
			BirthDate: time.Now().AddDate(-35, 0, 0),
		}, nil)

	_, err := svc.Create(context.Background(), enrollment.CreateParams{
		CollaboratorID:         collaboratorID,
		FinancialResponsibleID: collaboratorID,
		PlanID:                 planID,
	})

	var pricingErr *plan.PricingError

	require.ErrorAs(t, err, &pricingErr)
}

func TestService_Create_PlanNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := enrollment.NewMockRepository(ctrl)
	plans := enrollment.NewMockPlanSource(ctrl)
	collaborators := enrollment.NewMockBeneficiarySource(ctrl)
	svc := enrollment.NewService(repo, plans, collaborators)

	planID := uuid.New()

	plans.EXPECT().Get(gomock.Any(), planID).Return(nil, plan.ErrNotFound)

	_, err := svc.Create(context.Background(), enrollment.CreateParams{PlanID: planID})
	assert.ErrorIs(t, err, plan.ErrNotFound)
}

func TestService_ChangePlan_Reprices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := enrollment.NewMockRepository(ctrl)
	plans := enrollment.NewMockPlanSource(ctrl)
	collaborators := enrollment.NewMockBeneficiarySource(ctrl)
	svc := enrollment.NewService(repo, plans, collaborators)

	enrollmentID := uuid.New()
	collaboratorID := uuid.New()
	newPlanID := uuid.New()

	existing := &enrollment.Enrollment{
		ID:               enrollmentID,
		CollaboratorID:   collaboratorID,
		PlanID:           uuid.New(),
		MonthlyCostCents: 5000,
		Status:           enrollment.StatusActive,
	}

	newPlan := testPlan(newPlanID)

	repo.EXPECT().GetEnrollment(gomock.Any(), enrollmentID).Return(existing, nil)
	plans.EXPECT().Get(gomock.Any(), newPlanID).Return(newPlan, nil)
	collaborators.EXPECT().
		Get(gomock.Any(), collaboratorID).
		Return(&collaborator.Collaborator{
			ID:        collaboratorID,
			BirthDate: time.Now().AddDate(-40, 0, 0),
		}, nil)
	repo.EXPECT().UpdateEnrollment(gomock.Any(), existing).Return(nil)

	got, err := svc.ChangePlan(context.Background(), enrollmentID, newPlanID)
	require.NoError(t, err)
	assert.Equal(t, newPlanID, got.PlanID)
	assert.Equal(t, int64(20000), got.MonthlyCostCents)
}
