package transaction_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/rfmachado/backoffice/internal/http/transaction"
	"github.com/rfmachado/backoffice/internal/transaction"
)

func TestList_FiltersByBankAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	auditor := transaction.NewMockAuditor(ctrl)

	accountID := uuid.New()

	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			require.NotNil(t, filter.BankAccountID)
			assert.Equal(t, accountID, *filter.BankAccountID)

			return []*transaction.Transaction{}, nil
		})

	router := chi.NewRouter()
	router.Route("/transactions", handler.NewHandler(transaction.NewService(repo, auditor)).Routes)

	req := httptest.NewRequest(http.MethodGet, "/transactions?bank_account_id="+accountID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
