package app

import (
	"go-japastel-api/internal/cart"
	"go-japastel-api/internal/checkout"
	"go-japastel-api/internal/menu"
	"go-japastel-api/internal/payment"
	"go-japastel-api/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var cartMutations = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Total number of committed cart mutations across all sessions",
	},
)

func registerModules(router *gin.Engine, redisClient *redis.Client, logger *zap.Logger) error {
	// --- Services ---
	menuService, err := menu.NewService(logger)
	if err != nil {
		return err
	}
	cartService := cart.NewService(cart.Deps{
		Repo:    cart.NewRepository(func() { cartMutations.Inc() }),
		MenuSvc: menuService,
		Logger:  logger,
	})
	paymentService := payment.NewService(payment.Deps{
		Repo:   payment.NewRepository(),
		Logger: logger,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		CartSvc:    cartService,
		PaymentSvc: paymentService,
		Logger:     logger,
	})
	profileService := profile.NewService(profile.Deps{
		Store:  profile.NewRedisNameStore(redisClient),
		Logger: logger,
	})

	// --- Handlers ---
	menuHandler := menu.NewHandler(menuService)
	cartHandler := cart.NewHandler(cartService)
	paymentHandler := payment.NewHandler(paymentService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	profileHandler := profile.NewHandler(profileService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		menu.RegisterRoutes(api, menuHandler)
		cart.RegisterRoutes(api, cartHandler)
		payment.RegisterRoutes(api, paymentHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		profile.RegisterRoutes(api, profileHandler)
	}
	return nil
}
