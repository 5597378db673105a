package paymentgate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", 5*time.Second, nopLogger{})
}

func TestCreateOrder_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"order-1","amount":1770,"currency":"INR","status":"created"}`))
	})

	order, err := client.CreateOrder(context.Background(), 1770, "INR")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, 1770.0, order.Amount)
}

func TestVerifyPayment_Declined_IsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"orderId":"order-1","success":false,"reason":"insufficient funds"}`))
	})

	payment, err := client.VerifyPayment(context.Background(), "order-1")
	require.NoError(t, err)
	assert.False(t, payment.Success)
	assert.Equal(t, "insufficient funds", payment.Reason)
}

func TestVerifyPayment_OrderNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.VerifyPayment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestVerifyPayment_ProviderErrorMessageSurfaced(t *testing.T) {
	// Структурированная ошибка провайдера попадает в текст ошибки
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"code":502,"message":"upstream acquirer timeout"}`))
	})

	_, err := client.VerifyPayment(context.Background(), "order-1")
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "upstream acquirer timeout")
}

func TestRefund_RawErrorBodyFallback(t *testing.T) {
	// Неразбираемое тело ошибки попадает в ошибку как есть
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`gateway exploded`))
	})

	err := client.Refund(context.Background(), "pay-1", 1770)
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "gateway exploded")
}

func TestDebitWallet_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/wallets/100/debit", r.URL.Path)
		_, _ = w.Write([]byte(`{"paymentId":"wallet-1","amount":1770,"success":true}`))
	})

	payment, err := client.DebitWallet(context.Background(), 100, 1770)
	require.NoError(t, err)
	assert.True(t, payment.Success)
	assert.Equal(t, "wallet-1", payment.PaymentID)
}
