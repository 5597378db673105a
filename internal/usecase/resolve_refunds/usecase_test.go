package resolve_refunds

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
)

type fakeReconRepo struct {
	tickets  []*domain.ReservationLossTicket
	statuses map[string]domain.RefundStatus
	listErr  error
}

func (r *fakeReconRepo) ListUnresolved(_ context.Context) ([]*domain.ReservationLossTicket, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.tickets, nil
}

func (r *fakeReconRepo) UpdateRefundStatus(_ context.Context, id string, status domain.RefundStatus) error {
	r.statuses[id] = status
	return nil
}

type fakePaymentGate struct {
	failFor map[string]bool // payment ids, по которым возврат падает
	refunds []string
}

func (g *fakePaymentGate) Refund(_ context.Context, paymentID string, _ float64) error {
	if g.failFor[paymentID] {
		return errors.New("gateway unavailable")
	}
	g.refunds = append(g.refunds, paymentID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ticket(id, paymentID string, status domain.RefundStatus) *domain.ReservationLossTicket {
	return &domain.ReservationLossTicket{
		ID:           id,
		CustomerID:   100,
		SlotID:       10,
		WorkshopID:   1,
		PaymentID:    paymentID,
		Amount:       1770,
		RefundStatus: status,
	}
}

func TestExecute_RetriesUnresolvedRefunds(t *testing.T) {
	repo := &fakeReconRepo{
		tickets: []*domain.ReservationLossTicket{
			ticket("t1", "pay-1", domain.RefundPending),
			ticket("t2", "pay-2", domain.RefundFailed),
		},
		statuses: make(map[string]domain.RefundStatus),
	}
	gate := &fakePaymentGate{}
	uc := NewUseCase(repo, gate, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Resolved)
	assert.Equal(t, 0, resp.Failed)

	assert.ElementsMatch(t, []string{"pay-1", "pay-2"}, gate.refunds)
	assert.Equal(t, domain.RefundDone, repo.statuses["t1"])
	assert.Equal(t, domain.RefundDone, repo.statuses["t2"])
}

func TestExecute_OneFailureDoesNotStopPass(t *testing.T) {
	repo := &fakeReconRepo{
		tickets: []*domain.ReservationLossTicket{
			ticket("t1", "pay-1", domain.RefundPending),
			ticket("t2", "pay-2", domain.RefundPending),
		},
		statuses: make(map[string]domain.RefundStatus),
	}
	gate := &fakePaymentGate{failFor: map[string]bool{"pay-1": true}}
	uc := NewUseCase(repo, gate, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Resolved)
	assert.Equal(t, 1, resp.Failed)

	// Упавший остается в очереди на следующий проход
	assert.Equal(t, domain.RefundFailed, repo.statuses["t1"])
	assert.Equal(t, domain.RefundDone, repo.statuses["t2"])
}

func TestExecute_EmptyQueue(t *testing.T) {
	repo := &fakeReconRepo{statuses: make(map[string]domain.RefundStatus)}
	uc := NewUseCase(repo, &fakePaymentGate{}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Resolved)
	assert.Equal(t, 0, resp.Failed)
}

func TestExecute_ListError(t *testing.T) {
	repo := &fakeReconRepo{listErr: errors.New("db down"), statuses: make(map[string]domain.RefundStatus)}
	uc := NewUseCase(repo, &fakePaymentGate{}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
