package server

import (
	"estate-office-saas/internal/handler"
	"estate-office-saas/internal/middleware"
	"estate-office-saas/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo           *echo.Echo
	billingHandler *handler.BillingHandler
	officeHandler  *handler.OfficeHandler
	auth           echo.MiddlewareFunc
}

func NewServer(
	billingHandler *handler.BillingHandler,
	officeHandler *handler.OfficeHandler,
	jwtSecret string,
	adminRepo repository.AdminRepository,
	log *zap.Logger,
) *Server {
	e := echo.New()

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:           e,
		billingHandler: billingHandler,
		officeHandler:  officeHandler,
		auth:           middleware.AuthMiddleware(jwtSecret, adminRepo),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// The gateway redirect carries no credentials; trust comes from the
	// authority lookup inside the billing service.
	api.GET("/billing/callback", s.billingHandler.Callback)

	// -------- panel API --------
	panel := api.Group("", s.auth)
	panel.POST("/billing/purchase", s.billingHandler.Purchase)

	offices := panel.Group("/offices")
	offices.POST("", s.officeHandler.CreateOffice)
	offices.GET("", s.officeHandler.ListOffices)
	offices.GET("/:officeID", s.officeHandler.GetOffice)

	offices.GET("/:officeID/subscription", s.billingHandler.GetSubscription)
	offices.PATCH("/:officeID/subscription", s.billingHandler.AdjustSubscription)

	offices.POST("/:officeID/listings", s.officeHandler.CreateListing)
	offices.GET("/:officeID/listings", s.officeHandler.ListListings)
	offices.POST("/:officeID/customers", s.officeHandler.CreateCustomer)
	offices.GET("/:officeID/customers", s.officeHandler.ListCustomers)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
