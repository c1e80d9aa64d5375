package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ghoomlo/cab-booking/api"
	"github.com/ghoomlo/cab-booking/config"
	"github.com/ghoomlo/cab-booking/internal/middleware"
	"github.com/ghoomlo/cab-booking/internal/service/auth"
	"github.com/ghoomlo/cab-booking/internal/service/booking"
	"github.com/ghoomlo/cab-booking/internal/service/feedback"
	"github.com/ghoomlo/cab-booking/internal/service/fleet"
)

type Services struct {
	Auth     auth.AuthUseCase
	Booking  booking.BookingUseCase
	Fleet    fleet.FleetUseCase
	Feedback feedback.FeedbackUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, services Services) error {
	router := newRouter(cfg, services)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, services Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), gin.Logger(), middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Cab Booking Service API is running!")
	})

	requireAuth := middleware.RequireAuth([]byte(cfg.Auth.JWTSecret))

	api.NewAuthHandler(services.Auth).Register(router.Group("/auth"), requireAuth)
	api.NewBookingHandler(services.Booking).Register(router.Group("/bookings"))
	api.NewFleetHandler(services.Fleet).Register(router.Group("/fleet"), requireAuth)
	api.NewFeedbackHandler(services.Feedback).Register(router.Group("/feedback"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/swagger.json"),
		)))
	}

	return router
}
