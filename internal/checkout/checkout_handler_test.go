package checkout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-japastel-api/internal/checkout"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCheckoutService struct {
	FinalizeFn func(ctx context.Context, sessionID string) (checkout.ConfirmationResponse, error)
}

func (f *fakeCheckoutService) Finalize(ctx context.Context, sessionID string) (checkout.ConfirmationResponse, error) {
	return f.FinalizeFn(ctx, sessionID)
}

func setupCheckoutRouter(svc checkout.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "sess-1")
		c.Next()
	})
	api := r.Group("/api/v1")
	checkout.RegisterRoutes(api, checkout.NewHandler(svc))
	return r
}

func TestCheckoutHandler_Finalize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCheckoutService{
			FinalizeFn: func(ctx context.Context, sessionID string) (checkout.ConfirmationResponse, error) {
				return checkout.ConfirmationResponse{OrderNumber: 4242, Total: "R$ 30,80", TotalCents: 3080}, nil
			},
		}
		r := setupCheckoutRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"orderNumber":4242`)
		assert.Contains(t, w.Body.String(), "R$ 30,80")
	})

	t.Run("error_empty_cart_maps_to_422", func(t *testing.T) {
		svc := &fakeCheckoutService{
			FinalizeFn: func(ctx context.Context, sessionID string) (checkout.ConfirmationResponse, error) {
				return checkout.ConfirmationResponse{}, checkout.ErrEmptyCart
			},
		}
		r := setupCheckoutRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"EMPTY_CART"`)
	})

	t.Run("error_incomplete_payment_maps_to_422", func(t *testing.T) {
		svc := &fakeCheckoutService{
			FinalizeFn: func(ctx context.Context, sessionID string) (checkout.ConfirmationResponse, error) {
				return checkout.ConfirmationResponse{}, checkout.ErrIncompletePayment
			},
		}
		r := setupCheckoutRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"INCOMPLETE_PAYMENT"`)
		assert.Contains(t, w.Body.String(), "credit card")
	})
}
