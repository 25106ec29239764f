// Package server wires the HTTP transport: routing, request decoding,
// error-to-status mapping and middleware. Business rules live in
// internal/service; handlers here only translate between HTTP and services.
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/auth"
	"github.com/zerotabs/backend/internal/config"
	"github.com/zerotabs/backend/internal/middleware"
	"github.com/zerotabs/backend/internal/service"
)

// Services bundles every service the transport depends on.
type Services struct {
	Identity *service.IdentityService
	Sessions *service.SessionService
	Bills    *service.BillService
	Splits   *service.SplitService
	Payments *service.PaymentService
	Vendors  *service.VendorService
}

// Server is the HTTP front end.
type Server struct {
	app *fiber.App
	cfg *config.Config
	svc Services
}

// New builds the fiber application with all routes and middleware
// registered.
func New(cfg *config.Config, tokens *auth.TokenManager, svc Services) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "zerotabs",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	s := &Server{app: app, cfg: cfg, svc: svc}

	app.Use(cors.New())
	app.Use(middleware.RequestLogger())
	app.Use(metricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/metrics", metricsHandler())

	// Credential endpoints get a tighter rate limit than the rest of the
	// API. The limiter attaches per route, not to the group: profile reads
	// on /auth/me must not drain the credential budget.
	credLimiter := limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
	})
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", credLimiter, s.handleSignup)
	authGroup.Post("/verify", credLimiter, s.handleVerify)
	authGroup.Post("/login", credLimiter, s.handleLogin)
	authGroup.Post("/refresh", credLimiter, s.handleRefresh)
	authGroup.Post("/forgot-password", credLimiter, s.handleForgotPassword)
	authGroup.Post("/reset-password", credLimiter, s.handleResetPassword)
	authGroup.Get("/me", middleware.RequireAuth(tokens), s.handleMe)

	sessions := app.Group("/sessions")
	sessions.Post("/create", s.handleCreateSession)
	sessions.Post("/join", s.handleJoinSession)
	sessions.Post("/:session_id/close", s.handleCloseSession)
	sessions.Get("/", s.handleListSessions)
	sessions.Get("/:session_id", s.handleGetSession)

	bills := app.Group("/bills")
	bills.Post("/create", s.handleCreateBill)
	bills.Get("/session/:session_id", s.handleListBillsForSession)
	bills.Get("/:bill_id", s.handleGetBill)

	splits := app.Group("/splits")
	splits.Get("/bill/:bill_id", s.handleListSplitsForBill)
	splits.Post("/manual/:bill_id", s.handleCreateManualSplits)
	splits.Post("/:split_id/approve", s.handleApproveSplit)

	payments := app.Group("/payments")
	payments.Post("/create", s.handleCreatePayment)
	payments.Post("/:payment_id/process", s.handleProcessPayment)
	payments.Get("/session/:session_id", s.handleListPaymentsForSession)

	vendors := app.Group("/vendors")
	vendors.Post("/create", s.handleCreateVendor)
	vendors.Get("/:vendor_id", s.handleGetVendor)

	return s
}

// App exposes the fiber application for in-process tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen starts serving on addr, blocking until shutdown.
func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error { return s.app.Shutdown() }

// errorHandler maps classified service errors and fiber errors to HTTP
// statuses. Unclassified errors surface as 500 with a generic message.
func errorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Kind.HTTPStatus()).JSON(fiber.Map{
			"error": appErr.Msg,
			"kind":  appErr.Kind.String(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}
