package payment

import (
	"context"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Formats enforced at entry, mirroring the storefront's input constraints:
// digits only for number and CVV, MM/YY for the expiry. An empty value
// clears the field.
var cardFieldFormats = map[Field]*regexp.Regexp{
	FieldCardNumber:   regexp.MustCompile(`^[0-9]{1,16}$`),
	FieldSecurityCode: regexp.MustCompile(`^[0-9]{1,3}$`),
	FieldExpiry:       regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`),
}

//go:generate mockgen -source=payment_service.go -destination=../mock/payment/payment_service_mock.go -package=mock
type Service interface {
	SelectMethod(ctx context.Context, sessionID string, req SelectMethodRequest) error
	SetCardField(ctx context.Context, sessionID string, req SetCardFieldRequest) error
	Selection(ctx context.Context, sessionID string) (SelectionResponse, error)

	// IsComplete reports whether the session's selection can back an order.
	IsComplete(ctx context.Context, sessionID string) bool
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	Repo   Repository
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("payment repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:     deps.Repo,
		validate: validator.New(),
		logger:   deps.Logger,
	}
}

func (s *service) SelectMethod(ctx context.Context, sessionID string, req SelectMethodRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return mapValidationError(err)
	}

	sel := s.repo.GetOrCreate(sessionID)
	sel.SelectMethod(Method(req.Method))

	s.logger.Debug("payment method selected",
		zap.String("session_id", sessionID),
		zap.String("method", req.Method),
	)
	return nil
}

func (s *service) SetCardField(ctx context.Context, sessionID string, req SetCardFieldRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return mapValidationError(err)
	}

	field := Field(req.Field)
	if req.Value != "" && !cardFieldFormats[field].MatchString(req.Value) {
		return ErrInvalidCardField
	}

	sel := s.repo.GetOrCreate(sessionID)
	if !sel.SetCardField(field, req.Value) {
		return ErrCardNotApplicable
	}
	return nil
}

func (s *service) Selection(ctx context.Context, sessionID string) (SelectionResponse, error) {
	sel, ok := s.repo.Get(sessionID)
	if !ok {
		return toSelectionResponse(MethodCash, CardDetails{}), nil
	}
	method, card := sel.Current()
	return toSelectionResponse(method, card), nil
}

func (s *service) IsComplete(ctx context.Context, sessionID string) bool {
	sel, ok := s.repo.Get(sessionID)
	if !ok {
		// untouched selection means the cash default, which is complete
		return true
	}
	return sel.IsComplete()
}
