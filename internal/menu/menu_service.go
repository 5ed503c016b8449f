package menu

import (
	"context"

	"go-japastel-api/internal/pricing"

	"go.uber.org/zap"
)

// Item is a catalog entry with its price already normalized to centavos.
// Only items that made it through ParseBRL exist here, so everything a cart
// receives from the catalog is clean by construction.
type Item struct {
	ID        string
	Name      string
	Category  string
	UnitPrice int64
}

//go:generate mockgen -source=menu_service.go -destination=../mock/menu/menu_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) []ItemResponse
	Get(ctx context.Context, itemID string) (Item, error)
}

type service struct {
	items  []Item
	byID   map[string]Item
	logger *zap.Logger
}

// NewService loads the seeded catalog, parsing each authored display price
// once at startup. A malformed seed price aborts boot instead of leaking
// into carts.
func NewService(logger *zap.Logger) (Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	items := make([]Item, 0, len(seedItems))
	byID := make(map[string]Item, len(seedItems))
	for _, s := range seedItems {
		cents, err := pricing.ParseBRL(s.price)
		if err != nil {
			return nil, err
		}
		item := Item{
			ID:        s.id,
			Name:      s.name,
			Category:  s.category,
			UnitPrice: cents,
		}
		items = append(items, item)
		byID[item.ID] = item
	}

	logger.Info("menu catalog loaded", zap.Int("items", len(items)))

	return &service{
		items:  items,
		byID:   byID,
		logger: logger,
	}, nil
}

func (s *service) List(ctx context.Context) []ItemResponse {
	out := make([]ItemResponse, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, toItemResponse(item))
	}
	return out
}

func (s *service) Get(ctx context.Context, itemID string) (Item, error) {
	item, ok := s.byID[itemID]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}
