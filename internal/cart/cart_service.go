package cart

import (
	"context"

	"go-japastel-api/internal/menu"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	AddItem(ctx context.Context, sessionID string, req AddItemRequest) error
	Detail(ctx context.Context, sessionID string) (CartDetailResponse, error)
	Count(ctx context.Context, sessionID string) (int, error)

	UpdateQty(ctx context.Context, sessionID, itemID string, req UpdateQtyRequest) error
	Increment(ctx context.Context, sessionID, itemID string) error
	Decrement(ctx context.Context, sessionID, itemID string) error

	DeleteItem(ctx context.Context, sessionID, itemID string) error
	Clear(ctx context.Context, sessionID string) error

	// Snapshot exposes the raw ordered entries for checkout.
	Snapshot(ctx context.Context, sessionID string) []Item
}

type service struct {
	repo     Repository
	menuSvc  menu.Service
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	Repo    Repository
	MenuSvc menu.Service
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("cart repository cannot be nil")
	}
	if deps.MenuSvc == nil {
		panic("menu service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:     deps.Repo,
		menuSvc:  deps.MenuSvc,
		validate: validator.New(),
		logger:   deps.Logger,
	}
}

// AddItem resolves the requested item against the catalog and accumulates
// it into the session's cart. Prices never arrive from the client.
func (s *service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return mapValidationError(err)
	}

	item, err := s.menuSvc.Get(ctx, req.ItemID)
	if err != nil {
		return err
	}

	store := s.repo.GetOrCreate(sessionID)
	store.AddItem(Item{
		ID:        item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
	})

	s.logger.Debug("cart item added",
		zap.String("session_id", sessionID),
		zap.String("item_id", item.ID),
	)
	return nil
}

func (s *service) Detail(ctx context.Context, sessionID string) (CartDetailResponse, error) {
	return toDetailResponse(s.Snapshot(ctx, sessionID)), nil
}

func (s *service) Count(ctx context.Context, sessionID string) (int, error) {
	store, ok := s.repo.Get(sessionID)
	if !ok {
		return 0, nil
	}
	return store.Len(), nil
}

// UpdateQty applies the requested quantity. A non-positive quantity removes
// the entry; an unknown item id leaves the cart untouched.
func (s *service) UpdateQty(ctx context.Context, sessionID, itemID string, req UpdateQtyRequest) error {
	store, ok := s.repo.Get(sessionID)
	if !ok {
		return nil
	}
	store.UpdateQuantity(itemID, req.Qty)
	return nil
}

func (s *service) Increment(ctx context.Context, sessionID, itemID string) error {
	store, ok := s.repo.Get(sessionID)
	if !ok {
		return nil
	}
	if item, ok := store.Get(itemID); ok {
		// no upper bound on quantity
		store.UpdateQuantity(itemID, item.Quantity+1)
	}
	return nil
}

// Decrement lowers the quantity by one; at quantity 1 the entry is removed,
// matching the stepper behavior in the storefront.
func (s *service) Decrement(ctx context.Context, sessionID, itemID string) error {
	store, ok := s.repo.Get(sessionID)
	if !ok {
		return nil
	}
	if item, ok := store.Get(itemID); ok {
		store.UpdateQuantity(itemID, item.Quantity-1)
	}
	return nil
}

func (s *service) DeleteItem(ctx context.Context, sessionID, itemID string) error {
	store, ok := s.repo.Get(sessionID)
	if !ok {
		return nil
	}
	store.RemoveItem(itemID)
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	store, ok := s.repo.Get(sessionID)
	if !ok {
		return nil
	}
	store.Clear()
	s.logger.Debug("cart cleared", zap.String("session_id", sessionID))
	return nil
}

func (s *service) Snapshot(ctx context.Context, sessionID string) []Item {
	store, ok := s.repo.Get(sessionID)
	if !ok {
		return nil
	}
	return store.Snapshot()
}
