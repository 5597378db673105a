package paymentgate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза
// Отказ платежа (declined) - это не ошибка клиента: возвращается Payment
// с Success=false и причиной провайдера, а error остается nil
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает заказ у провайдера на указанную сумму
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency string) (*Order, error) {
	body := createOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  uuid.NewString(),
	}

	var order Order
	if err := c.post(ctx, "/v1/orders", body, &order); err != nil {
		return nil, err
	}

	c.log.Info("PaymentGate: order created, order_id=%s, amount=%.2f %s", order.ID, amount, currency)
	return &order, nil
}

// VerifyPayment опрашивает провайдера о результате платежа по заказу
// Успех и отказ - оба валидные ответы; ошибка возвращается только при
// недоступности провайдера или некорректном ответе
func (c *Client) VerifyPayment(ctx context.Context, orderID string) (*Payment, error) {
	url := fmt.Sprintf("%s/v1/orders/%s/payment", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrOrderNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readProviderError(resp.Body))
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if payment.Success {
		c.log.Info("PaymentGate: payment verified, order_id=%s, payment_id=%s", orderID, payment.PaymentID)
	} else {
		c.log.Warn("PaymentGate: payment declined, order_id=%s, reason=%s", orderID, payment.Reason)
	}

	return &payment, nil
}

// Refund возвращает платеж полностью или частично
// Вызывается при компенсации ReservationLost - оплата прошла, но слот
// достался конкурирующему бронированию
func (c *Client) Refund(ctx context.Context, paymentID string, amount float64) error {
	path := fmt.Sprintf("/v1/payments/%s/refund", paymentID)

	var result struct {
		RefundID string `json:"refundId"`
	}
	if err := c.post(ctx, path, refundRequest{Amount: amount}, &result); err != nil {
		return err
	}

	c.log.Info("PaymentGate: refund issued, payment_id=%s, refund_id=%s, amount=%.2f", paymentID, result.RefundID, amount)
	return nil
}

// DebitWallet синхронно списывает сумму с кошелька пользователя
// Недостаток средств приходит как declined Payment, не как ошибка
func (c *Client) DebitWallet(ctx context.Context, customerID int64, amount float64) (*Payment, error) {
	path := fmt.Sprintf("/v1/wallets/%d/debit", customerID)

	var payment Payment
	if err := c.post(ctx, path, debitWalletRequest{Amount: amount}, &payment); err != nil {
		return nil, err
	}

	if payment.Success {
		c.log.Info("PaymentGate: wallet debited, customer_id=%d, payment_id=%s, amount=%.2f", customerID, payment.PaymentID, amount)
	} else {
		c.log.Warn("PaymentGate: wallet debit declined, customer_id=%d, reason=%s", customerID, payment.Reason)
	}

	return &payment, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrOrderNotFound
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readProviderError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readProviderError извлекает сообщение ошибки провайдера из тела ответа.
// Провайдер отвечает структурой ErrorResponse; если тело не разбирается,
// оно попадает в ошибку как есть
func readProviderError(r io.Reader) string {
	body, _ := io.ReadAll(r)

	var provErr ErrorResponse
	if err := json.Unmarshal(body, &provErr); err == nil && provErr.Message != "" {
		return provErr.Message
	}

	return string(body)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
