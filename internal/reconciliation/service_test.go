package reconciliation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rfmachado/backoffice/internal/audit"
	"github.com/rfmachado/backoffice/internal/ofx"
	"github.com/rfmachado/backoffice/internal/reconciliation"
	"github.com/rfmachado/backoffice/internal/transaction"
)

func TestService_SuggestMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reconciliation.NewMockRepository(ctrl)
	svc := reconciliation.NewService(repo)

	accountID := uuid.New()
	entryDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	entries := []ofx.Entry{
		{
			ExternalID:  "e1",
			Date:        entryDate,
			AmountCents: -4500,
			Description: "Market",
			Type:        transaction.TypeExpense,
		},
		{
			ExternalID:  "e2",
			Date:        entryDate,
			AmountCents: 125075,
			Description: "Salary",
			Type:        transaction.TypeIncome,
		},
	}

	candidate := &transaction.Transaction{
		ID:          uuid.New(),
		Type:        transaction.TypeExpense,
		AmountCents: 4500,
		Status:      transaction.StatusPending,
	}

	// Negative entry amounts search by absolute value, inside a three-day
	// window either side of the entry date.
	repo.EXPECT().
		CandidatesFor(gomock.Any(), accountID, transaction.TypeExpense, int64(4500),
			time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		).
		Return([]*transaction.Transaction{candidate}, nil)
	repo.EXPECT().
		CandidatesFor(gomock.Any(), accountID, transaction.TypeIncome, int64(125075), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	results, err := svc.SuggestMatches(context.Background(), entries, accountID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "e1", results[0].Entry.ExternalID)
	require.Len(t, results[0].Matches, 1)
	assert.Equal(t, candidate.ID, results[0].Matches[0].ID)

	assert.Equal(t, "e2", results[1].Entry.ExternalID)
	assert.Empty(t, results[1].Matches)
}

func TestService_Confirm(t *testing.T) {
	txID := uuid.New()
	accountID := uuid.New()
	settlement := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	pendingExpense := func() *transaction.Transaction {
		return &transaction.Transaction{
			ID:            txID,
			Type:          transaction.TypeExpense,
			AmountCents:   4500,
			Status:        transaction.StatusPending,
			Description:   "Market",
			BankAccountID: &accountID,
		}
	}

	t.Run("ExpenseDecreasesBalance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reconciliation.NewMockRepository(ctrl)
		btx := reconciliation.NewMockConfirmationTx(ctrl)

		repo.EXPECT().BeginConfirmation(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetTransaction(gomock.Any(), txID).Return(pendingExpense(), nil)
		btx.EXPECT().MarkPaid(gomock.Any(), txID, settlement).Return(nil)
		btx.EXPECT().AdjustBalance(gomock.Any(), accountID, int64(-4500)).Return(nil)
		btx.EXPECT().
			CreateAuditEntry(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e *audit.Entry) {
				assert.Equal(t, audit.ActionLiquidate, e.Action)
				assert.Equal(t, txID, e.TransactionID)
				assert.NotEmpty(t, e.Previous)
				assert.NotEmpty(t, e.Next)
			}).
			Return(nil)
		btx.EXPECT().Commit().Return(nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := reconciliation.NewService(repo)

		got, err := svc.Confirm(context.Background(), reconciliation.ConfirmParams{
			TransactionID:  txID,
			SettlementDate: settlement,
			Reason:         "bank statement 2026-03",
		})
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusPaid, got.Status)
		assert.True(t, got.Reconciled)
		require.NotNil(t, got.SettlementDate)
		assert.Equal(t, settlement, *got.SettlementDate)
	})

	t.Run("IncomeIncreasesBalance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reconciliation.NewMockRepository(ctrl)
		btx := reconciliation.NewMockConfirmationTx(ctrl)

		income := pendingExpense()
		income.Type = transaction.TypeIncome

		repo.EXPECT().BeginConfirmation(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetTransaction(gomock.Any(), txID).Return(income, nil)
		btx.EXPECT().MarkPaid(gomock.Any(), txID, settlement).Return(nil)
		btx.EXPECT().AdjustBalance(gomock.Any(), accountID, int64(4500)).Return(nil)
		btx.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(nil)
		btx.EXPECT().Commit().Return(nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := reconciliation.NewService(repo)

		_, err := svc.Confirm(context.Background(), reconciliation.ConfirmParams{
			TransactionID:  txID,
			SettlementDate: settlement,
			Reason:         "bank statement 2026-03",
		})
		require.NoError(t, err)
	})

	t.Run("ReasonTooShort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reconciliation.NewMockRepository(ctrl)
		svc := reconciliation.NewService(repo)

		_, err := svc.Confirm(context.Background(), reconciliation.ConfirmParams{
			TransactionID:  txID,
			SettlementDate: settlement,
			Reason:         "ok",
		})
		assert.ErrorIs(t, err, transaction.ErrReasonRequired)
	})

	t.Run("TransactionNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reconciliation.NewMockRepository(ctrl)
		btx := reconciliation.NewMockConfirmationTx(ctrl)

		repo.EXPECT().BeginConfirmation(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetTransaction(gomock.Any(), txID).Return(nil, transaction.ErrNotFound)
		btx.EXPECT().Rollback().Return(nil)

		svc := reconciliation.NewService(repo)

		_, err := svc.Confirm(context.Background(), reconciliation.ConfirmParams{
			TransactionID:  txID,
			SettlementDate: settlement,
			Reason:         "bank statement 2026-03",
		})
		assert.ErrorIs(t, err, transaction.ErrNotFound)
	})

	t.Run("AlreadyReconciled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reconciliation.NewMockRepository(ctrl)
		btx := reconciliation.NewMockConfirmationTx(ctrl)

		paid := pendingExpense()
		paid.Status = transaction.StatusPaid
		paid.Reconciled = true

		repo.EXPECT().BeginConfirmation(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetTransaction(gomock.Any(), txID).Return(paid, nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := reconciliation.NewService(repo)

		_, err := svc.Confirm(context.Background(), reconciliation.ConfirmParams{
			TransactionID:  txID,
			SettlementDate: settlement,
			Reason:         "bank statement 2026-03",
		})
		assert.ErrorIs(t, err, reconciliation.ErrAlreadyReconciled)
	})

	t.Run("NoLinkedAccount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reconciliation.NewMockRepository(ctrl)
		btx := reconciliation.NewMockConfirmationTx(ctrl)

		orphan := pendingExpense()
		orphan.BankAccountID = nil

		repo.EXPECT().BeginConfirmation(gomock.Any()).Return(btx, nil)
		btx.EXPECT().GetTransaction(gomock.Any(), txID).Return(orphan, nil)
		btx.EXPECT().Rollback().Return(nil)

		svc := reconciliation.NewService(repo)

		_, err := svc.Confirm(context.Background(), reconciliation.ConfirmParams{
			TransactionID:  txID,
			SettlementDate: settlement,
			Reason:         "bank statement 2026-03",
		})
		assert.ErrorIs(t, err, reconciliation.ErrNoBankAccount)
	})
}
