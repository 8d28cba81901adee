package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rfmachado/backoffice/internal/billing"
	"github.com/rfmachado/backoffice/internal/plan"
	"github.com/rfmachado/backoffice/internal/transaction"
)

func TestService_GeneratePlanBilling(t *testing.T) {
	planID := uuid.New()
	respID := uuid.New()

	testPlan := &plan.Plan{
		ID:         planID,
		Kind:       plan.KindHealth,
		Operator:   "Unimed",
		Name:       "Unimed Essential",
		BillingDay: 15,
	}

	items := []*billing.Item{
		{EnrollmentID: uuid.New(), PlanID: planID, FinancialResponsibleID: respID, MonthlyCostCents: 12000, RetroactiveDiffCents: 0},
		{EnrollmentID: uuid.New(), PlanID: planID, FinancialResponsibleID: respID, MonthlyCostCents: 24000, RetroactiveDiffCents: 6500},
	}

	t.Run("AggregatesCostsAndRetroactiveDiffs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := billing.NewMockRepository(ctrl)
		btx := billing.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetPlan(gomock.Any(), planID).Return(testPlan, nil)
		btx.EXPECT().PlanItems(gomock.Any(), planID).Return(items, nil)
		btx.EXPECT().
			HasPaidTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ any, key billing.Key, from, to time.Time) {
				require.NotNil(t, key.PlanID)
				assert.Equal(t, planID, *key.PlanID)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
				assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), to)
			}).
			Return(false, nil)
		btx.EXPECT().
			UpsertPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ any, tx *transaction.Transaction, _ billing.Key, _, _ time.Time) {
				assert.Equal(t, transaction.TypeExpense, tx.Type)
				assert.Equal(t, transaction.StatusPending, tx.Status)
				assert.Equal(t, int64(12000+24000+6500), tx.AmountCents)
				assert.Equal(t, "Unimed Essential invoice 2026-03", tx.Description)
				assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), tx.Date)
			}).
			Return(nil)
		btx.EXPECT().
			ZeroRetroactiveDiffs(gomock.Any(), []uuid.UUID{items[0].EnrollmentID, items[1].EnrollmentID}).
			Return(nil)
		btx.EXPECT().Commit().Return(nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := billing.NewService(repo, 10)

		tx, err := svc.GeneratePlanBilling(context.Background(), planID, 2026, time.March)
		require.NoError(t, err)
		assert.Equal(t, int64(42500), tx.AmountCents)
	})

	t.Run("PaidPeriodRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := billing.NewMockRepository(ctrl)
		btx := billing.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetPlan(gomock.Any(), planID).Return(testPlan, nil)
		btx.EXPECT().PlanItems(gomock.Any(), planID).Return(items, nil)
		btx.EXPECT().
			HasPaidTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := billing.NewService(repo, 10)

		_, err := svc.GeneratePlanBilling(context.Background(), planID, 2026, time.March)
		assert.ErrorIs(t, err, billing.ErrPeriodPaid)
	})

	t.Run("NothingToBill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := billing.NewMockRepository(ctrl)
		btx := billing.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetPlan(gomock.Any(), planID).Return(testPlan, nil)
		btx.EXPECT().PlanItems(gomock.Any(), planID).Return(nil, nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := billing.NewService(repo, 10)

		_, err := svc.GeneratePlanBilling(context.Background(), planID, 2026, time.March)
		assert.ErrorIs(t, err, billing.ErrNothingToBill)
	})

	t.Run("PlanNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := billing.NewMockRepository(ctrl)
		btx := billing.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetPlan(gomock.Any(), planID).Return(nil, plan.ErrNotFound)
		btx.EXPECT().Rollback().Return(nil)

		svc := billing.NewService(repo, 10)

		_, err := svc.GeneratePlanBilling(context.Background(), planID, 2026, time.March)
		assert.ErrorIs(t, err, plan.ErrNotFound)
	})

	t.Run("BillingDayClampedToMonthEnd", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := billing.NewMockRepository(ctrl)
		btx := billing.NewMockTx(ctrl)

		endOfMonthPlan := &plan.Plan{ID: planID, Name: "Unimed Essential", BillingDay: 31}

		repo.EXPECT().Begin(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetPlan(gomock.Any(), planID).Return(endOfMonthPlan, nil)
		btx.EXPECT().PlanItems(gomock.Any(), planID).Return(items, nil)
		btx.EXPECT().
			HasPaidTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		btx.EXPECT().
			UpsertPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ any, tx *transaction.Transaction, _ billing.Key, _, _ time.Time) {
				assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), tx.Date)
			}).
			Return(nil)
		btx.EXPECT().ZeroRetroactiveDiffs(gomock.Any(), gomock.Any()).Return(nil)
		btx.EXPECT().Commit().Return(nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := billing.NewService(repo, 10)

		_, err := svc.GeneratePlanBilling(context.Background(), planID, 2026, time.February)
		require.NoError(t, err)
	})
}

func TestService_GenerateResponsibleBilling(t *testing.T) {
	respA := uuid.New()
	respB := uuid.New()
	planID := uuid.New()

	items := []*billing.Item{
		{EnrollmentID: uuid.New(), PlanID: planID, FinancialResponsibleID: respA, MonthlyCostCents: 12000},
		{EnrollmentID: uuid.New(), PlanID: planID, FinancialResponsibleID: respA, MonthlyCostCents: 24000, RetroactiveDiffCents: 500},
		{EnrollmentID: uuid.New(), PlanID: planID, FinancialResponsibleID: respB, MonthlyCostCents: 15000},
	}

	t.Run("OneTransactionPerResponsible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := billing.NewMockRepository(ctrl)

		repo.EXPECT().ActiveItems(gomock.Any()).Return(items, nil)

		totals := map[uuid.UUID]int64{}

		repo.EXPECT().Begin(gomock.Any()).Times(2).DoAndReturn(func(_ any) (billing.Tx, error) {
			btx := billing.NewMockTx(ctrl)
			btx.EXPECT().
				HasPaidTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(false, nil)
			btx.EXPECT().
				UpsertPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Do(func(_ any, tx *transaction.Transaction, key billing.Key, _, _ time.Time) {
					require.NotNil(t, key.FinancialResponsibleID)
					assert.Equal(t, transaction.TypeIncome, tx.Type)
					assert.Equal(t, "Benefits charge 2026-04", tx.Description)
					totals[*key.FinancialResponsibleID] = tx.AmountCents
				}).
				Return(nil)
			btx.EXPECT().ZeroRetroactiveDiffs(gomock.Any(), gomock.Any()).Return(nil)
			btx.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(nil)
			btx.EXPECT().Commit().Return(nil)
			btx.EXPECT().Rollback().Return(nil)
			return btx, nil
		})

		svc := billing.NewService(repo, 10)

		generated, err := svc.GenerateResponsibleBilling(context.Background(), 2026, time.April)
		require.NoError(t, err)
		assert.Len(t, generated, 2)
		assert.Equal(t, int64(36500), totals[respA])
		assert.Equal(t, int64(15000), totals[respB])
	})

	t.Run("PaidResponsibleSkipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := billing.NewMockRepository(ctrl)

		repo.EXPECT().ActiveItems(gomock.Any()).Return(items[:2], nil)

		btx := billing.NewMockTx(ctrl)
		repo.EXPECT().Begin(gomock.Any()).Return(btx, nil)
		btx.EXPECT().
			HasPaidTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := billing.NewService(repo, 10)

		generated, err := svc.GenerateResponsibleBilling(context.Background(), 2026, time.April)
		require.NoError(t, err)
		assert.Empty(t, generated)
	})
}
