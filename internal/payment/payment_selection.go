package payment

import "sync"

type Method string

const (
	MethodCash       Method = "CASH"
	MethodPix        Method = "PIX"
	MethodCreditCard Method = "CREDIT_CARD"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodPix, MethodCreditCard:
		return true
	}
	return false
}

// RequiresCard reports whether the method needs the card sub-form.
func (m Method) RequiresCard() bool {
	return m == MethodCreditCard
}

type Field string

const (
	FieldCardNumber   Field = "card_number"
	FieldSecurityCode Field = "security_code"
	FieldExpiry       Field = "expiry"
)

type CardDetails struct {
	CardNumber   string
	SecurityCode string
	Expiry       string
}

func (c CardDetails) Complete() bool {
	return c.CardNumber != "" && c.SecurityCode != "" && c.Expiry != ""
}

// Selection tracks one session's chosen payment method and, for credit
// card, the entered card fields. A fresh selection defaults to cash.
type Selection struct {
	mu     sync.Mutex
	method Method
	card   CardDetails
}

func NewSelection() *Selection {
	return &Selection{method: MethodCash}
}

// SelectMethod switches the active method. Leaving CREDIT_CARD discards any
// entered card details, so switching back requires re-entry.
func (s *Selection) SelectMethod(m Method) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.method == MethodCreditCard && m != MethodCreditCard {
		s.card = CardDetails{}
	}
	s.method = m
}

// SetCardField stores one card field. It reports false, changing nothing,
// when the active method is not CREDIT_CARD or the field is unknown.
func (s *Selection) SetCardField(field Field, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.method != MethodCreditCard {
		return false
	}
	switch field {
	case FieldCardNumber:
		s.card.CardNumber = value
	case FieldSecurityCode:
		s.card.SecurityCode = value
	case FieldExpiry:
		s.card.Expiry = value
	default:
		return false
	}
	return true
}

// IsComplete is true for cash and pix unconditionally, and for credit card
// once all three card fields are non-empty.
func (s *Selection) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.method != MethodCreditCard {
		return true
	}
	return s.card.Complete()
}

// Current returns the active method and a copy of the card details.
func (s *Selection) Current() (Method, CardDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method, s.card
}
