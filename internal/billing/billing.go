package billing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNothingToBill means the period's enrollments add up to zero.
	ErrNothingToBill = errors.New("nothing to bill for this period")

	// ErrPeriodPaid guards regeneration: a period with a paid transaction is
	// immutable.
	ErrPeriodPaid = errors.New("billing period already paid")
)

// Item is the billable view of an active enrollment: its current monthly
// cost plus whatever retroactive difference has accrued since the last run.
type Item struct {
	EnrollmentID           uuid.UUID
	PlanID                 uuid.UUID
	FinancialResponsibleID uuid.UUID
	MonthlyCostCents       int64
	RetroactiveDiffCents   int64
}

// Key identifies the single pending transaction a billing run upserts:
// either one per plan or one per financial responsible, always scoped to a
// period.
type Key struct {
	PlanID                 *uuid.UUID
	FinancialResponsibleID *uuid.UUID
}

// periodBounds returns the first and last day of the billing month.
func periodBounds(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)

	return first, last
}

// dueDateFor clamps the billing day to the month's length, so a plan billed
// on the 31st still gets a due date in February.
func dueDateFor(year int, month time.Month, day int) time.Time {
	_, last := periodBounds(year, month)
	if day > last.Day() {
		day = last.Day()
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
