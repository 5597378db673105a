package paymentgate

// Order заказ, созданный у платежного провайдера
type Order struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// Payment результат платежа (онлайн или кошелек)
// При отказе Success = false, а Reason содержит причину провайдера -
// она передается пользователю как есть, без интерпретации
type Payment struct {
	OrderID   string  `json:"orderId,omitempty"`
	PaymentID string  `json:"paymentId"`
	Amount    float64 `json:"amount"`
	Success   bool    `json:"success"`
	Reason    string  `json:"reason,omitempty"`
}

// createOrderRequest тело запроса на создание заказа
type createOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// refundRequest тело запроса на возврат
type refundRequest struct {
	Amount float64 `json:"amount"`
}

// debitWalletRequest тело запроса на списание с кошелька
type debitWalletRequest struct {
	Amount float64 `json:"amount"`
}

// ErrorResponse модель ошибки от провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
