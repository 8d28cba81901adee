package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends an audit entry. Failures are logged and swallowed so the
// audit trail never blocks the primary mutation.
func (s *Service) Record(ctx context.Context, e Entry) {
	if err := s.repo.CreateEntry(ctx, &e); err != nil {
		slog.Error("failed to record audit entry",
			"transaction_id", e.TransactionID,
			"action", e.Action,
			"error", err,
		)
	}
}

func (s *Service) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]*Entry, error) {
	return s.repo.ListByTransaction(ctx, transactionID)
}
