package reconciliation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rfmachado/backoffice/internal/bankaccount"
	handler "github.com/rfmachado/backoffice/internal/http/reconciliation"
	"github.com/rfmachado/backoffice/internal/reconciliation"
	"github.com/rfmachado/backoffice/internal/transaction"
)

func TestConfirm_DeletedBankAccountIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reconciliation.NewMockRepository(ctrl)
	btx := reconciliation.NewMockConfirmationTx(ctrl)

	accountID := uuid.New()
	tx := &transaction.Transaction{
		ID:            uuid.New(),
		Type:          transaction.TypeExpense,
		AmountCents:   4500,
		Status:        transaction.StatusPending,
		BankAccountID: &accountID,
	}

	repo.EXPECT().BeginConfirmation(gomock.Any()).Return(btx, nil)
	btx.EXPECT().GetTransaction(gomock.Any(), tx.ID).Return(tx, nil)
	btx.EXPECT().MarkPaid(gomock.Any(), tx.ID, gomock.Any()).Return(nil)
	btx.EXPECT().AdjustBalance(gomock.Any(), accountID, int64(-4500)).Return(bankaccount.ErrNotFound)
	btx.EXPECT().Rollback().Return(nil)

	router := chi.NewRouter()
	router.Route("/reconciliation", handler.NewHandler(reconciliation.NewService(repo)).Routes)

	body := `{"transactionId":"` + tx.ID.String() + `","settlementDate":"2026-03-12T00:00:00Z","reason":"statement line 4"}`
	req := httptest.NewRequest(http.MethodPost, "/reconciliation/confirm", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
