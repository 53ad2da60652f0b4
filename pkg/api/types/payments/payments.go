package payments

// CheckoutSpec asks the payment service to open a checkout session
// for an already-created order.
type CheckoutSpec struct {
	OrderID       int64   `json:"orderId"`
	CustomerID    int64   `json:"customerId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	CustomerEmail string  `json:"customerEmail,omitempty"`
}

// CheckoutSession is a short-lived handle to an external payment page.
//
// The client holds it only long enough to hand the URL to the user;
// it is never persisted.
type CheckoutSession struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId,omitempty"`
	OrderID     int64  `json:"orderId,omitempty"`
}

func (s *CheckoutSession) Equal(o *CheckoutSession) bool {
	if s == nil || o == nil {
		return (s == nil) && (o == nil)
	}
	return s.CheckoutURL == o.CheckoutURL &&
		s.SessionID == o.SessionID &&
		s.OrderID == o.OrderID
}

type VerifySpec struct {
	SessionID string `json:"sessionId"`
}

type VerifyResult struct {
	OrderID   int64   `json:"orderId"`
	Amount    float64 `json:"amount"`
	PaymentID string  `json:"paymentId,omitempty"`
	Status    string  `json:"status"`
}

func (v *VerifyResult) Equal(o *VerifyResult) bool {
	if v == nil || o == nil {
		return (v == nil) && (o == nil)
	}
	return v.OrderID == o.OrderID &&
		v.Amount == o.Amount &&
		v.PaymentID == o.PaymentID &&
		v.Status == o.Status
}
