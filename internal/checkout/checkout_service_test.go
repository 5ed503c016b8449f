package checkout_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"go-japastel-api/internal/cart"
	"go-japastel-api/internal/checkout"
	"go-japastel-api/internal/menu"
	mock "go-japastel-api/internal/mock/menu"
	"go-japastel-api/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     checkout.Service
	cartSvc cart.Service
	paySvc  payment.Service
	menuSvc *mock.MockService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	menuSvc := mock.NewMockService(ctrl)
	cartSvc := cart.NewService(cart.Deps{
		Repo:    cart.NewRepository(),
		MenuSvc: menuSvc,
	})
	paySvc := payment.NewService(payment.Deps{Repo: payment.NewRepository()})
	svc := checkout.NewService(checkout.Deps{
		CartSvc:    cartSvc,
		PaymentSvc: paySvc,
	})
	return &fixture{svc: svc, cartSvc: cartSvc, paySvc: paySvc, menuSvc: menuSvc}
}

func (f *fixture) addItem(t *testing.T, ctx context.Context, sessionID, itemID string, price int64, times int) {
	t.Helper()
	f.menuSvc.EXPECT().
		Get(ctx, itemID).
		Return(menu.Item{ID: itemID, Name: itemID, UnitPrice: price}, nil).
		Times(times)
	for i := 0; i < times; i++ {
		require.NoError(t, f.cartSvc.AddItem(ctx, sessionID, cart.AddItemRequest{ItemID: itemID}))
	}
}

func TestCheckoutService_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("error_empty_cart", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Finalize(ctx, "sess-1")
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)

		// retrying on the still-empty cart fails the same way
		_, err = f.svc.Finalize(ctx, "sess-1")
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
		assert.Empty(t, f.cartSvc.Snapshot(ctx, "sess-1"))
	})

	t.Run("error_incomplete_credit_card_leaves_cart_untouched", func(t *testing.T) {
		f := newFixture(t)
		f.addItem(t, ctx, "sess-1", "pastel-carne", 850, 1)

		require.NoError(t, f.paySvc.SelectMethod(ctx, "sess-1", payment.SelectMethodRequest{Method: "CREDIT_CARD"}))
		require.NoError(t, f.paySvc.SetCardField(ctx, "sess-1", payment.SetCardFieldRequest{Field: "card_number", Value: "4111111111111111"}))
		require.NoError(t, f.paySvc.SetCardField(ctx, "sess-1", payment.SetCardFieldRequest{Field: "expiry", Value: "12/29"}))
		// security code deliberately empty

		_, err := f.svc.Finalize(ctx, "sess-1")
		assert.ErrorIs(t, err, checkout.ErrIncompletePayment)

		items := f.cartSvc.Snapshot(ctx, "sess-1")
		assert.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("success_cash_clears_cart", func(t *testing.T) {
		f := newFixture(t)
		f.addItem(t, ctx, "sess-1", "pastel-especial", 1290, 2)
		f.addItem(t, ctx, "sess-1", "caldo-cana-300", 500, 1)

		res, err := f.svc.Finalize(ctx, "sess-1")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, res.OrderNumber, 1000)
		assert.LessOrEqual(t, res.OrderNumber, 9999)
		assert.Equal(t, int64(3080), res.TotalCents)
		assert.Equal(t, "R$ 30,80", res.Total)

		assert.Empty(t, f.cartSvc.Snapshot(ctx, "sess-1"))
	})

	t.Run("success_after_correcting_payment", func(t *testing.T) {
		f := newFixture(t)
		f.addItem(t, ctx, "sess-1", "coxinha", 650, 1)

		require.NoError(t, f.paySvc.SelectMethod(ctx, "sess-1", payment.SelectMethodRequest{Method: "CREDIT_CARD"}))
		_, err := f.svc.Finalize(ctx, "sess-1")
		assert.ErrorIs(t, err, checkout.ErrIncompletePayment)

		require.NoError(t, f.paySvc.SetCardField(ctx, "sess-1", payment.SetCardFieldRequest{Field: "card_number", Value: "4111111111111111"}))
		require.NoError(t, f.paySvc.SetCardField(ctx, "sess-1", payment.SetCardFieldRequest{Field: "security_code", Value: "123"}))
		require.NoError(t, f.paySvc.SetCardField(ctx, "sess-1", payment.SetCardFieldRequest{Field: "expiry", Value: "12/29"}))

		res, err := f.svc.Finalize(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, int64(650), res.TotalCents)
	})

	t.Run("double_submit_produces_exactly_one_confirmation", func(t *testing.T) {
		f := newFixture(t)
		f.addItem(t, ctx, "sess-1", "kibe", 600, 1)

		results := make(chan error, 2)
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.svc.Finalize(ctx, "sess-1")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var successes, emptyCart int
		for err := range results {
			switch {
			case err == nil:
				successes++
			default:
				assert.ErrorIs(t, err, checkout.ErrEmptyCart)
				emptyCart++
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, emptyCart)
	})

	t.Run("sessions_finalize_independently", func(t *testing.T) {
		f := newFixture(t)
		f.addItem(t, ctx, "sess-1", "kibe", 600, 1)

		_, err := f.svc.Finalize(ctx, "sess-2")
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)

		_, err = f.svc.Finalize(ctx, "sess-1")
		assert.NoError(t, err)
	})
}

func TestCheckoutErrors_Codes(t *testing.T) {
	// each rejection keeps its own code so clients can tell which state
	// the user has to fix
	assert.Equal(t, "EMPTY_CART", checkout.ErrEmptyCart.Code)
	assert.Equal(t, "INCOMPLETE_PAYMENT", checkout.ErrIncompletePayment.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, checkout.ErrEmptyCart.HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, checkout.ErrIncompletePayment.HTTPStatus)
}
