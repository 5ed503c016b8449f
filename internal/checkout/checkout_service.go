package checkout

import (
	"context"
	"math/rand"
	"sync"

	"go-japastel-api/internal/cart"
	"go-japastel-api/internal/payment"
	"go-japastel-api/internal/pricing"

	"go.uber.org/zap"
)

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Finalize(ctx context.Context, sessionID string) (ConfirmationResponse, error)
}

type service struct {
	cartSvc cart.Service
	paySvc  payment.Service
	logger  *zap.Logger

	mu       sync.Mutex
	inflight map[string]*sync.Mutex
}

type Deps struct {
	CartSvc    cart.Service
	PaymentSvc payment.Service
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.PaymentSvc == nil {
		panic("payment service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		cartSvc:  deps.CartSvc,
		paySvc:   deps.PaymentSvc,
		logger:   deps.Logger,
		inflight: make(map[string]*sync.Mutex),
	}
}

// Finalize validates the session's cart and payment selection and, when
// both pass, produces the order confirmation and clears the cart. The cart
// is cleared only after the confirmation exists; every failure path leaves
// cart and payment state untouched so the user can correct and retry.
//
// A second submit racing the first serializes on the per-session lock and
// then fails on the emptied cart, so the cart is never double-cleared and
// only one confirmation is ever produced.
func (s *service) Finalize(ctx context.Context, sessionID string) (ConfirmationResponse, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	items := s.cartSvc.Snapshot(ctx, sessionID)
	if len(items) == 0 {
		return ConfirmationResponse{}, ErrEmptyCart
	}

	if !s.paySvc.IsComplete(ctx, sessionID) {
		return ConfirmationResponse{}, ErrIncompletePayment
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}
	totalCents := pricing.CartTotal(lines)

	// four digits, collisions across the session are acceptable
	orderNumber := 1000 + rand.Intn(9000)

	confirmation := ConfirmationResponse{
		OrderNumber: orderNumber,
		Total:       pricing.FormatBRL(totalCents),
		TotalCents:  totalCents,
	}

	if err := s.cartSvc.Clear(ctx, sessionID); err != nil {
		return ConfirmationResponse{}, err
	}

	s.logger.Info("order finalized",
		zap.String("session_id", sessionID),
		zap.Int("order_number", orderNumber),
		zap.Int64("total_cents", totalCents),
	)
	return confirmation, nil
}

func (s *service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.inflight[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.inflight[sessionID] = lock
	}
	return lock
}
