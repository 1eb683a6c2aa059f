package router

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/sefazor/weddingplanner-backend/internal/config"
	"github.com/sefazor/weddingplanner-backend/internal/handler"
	zaplog "github.com/sefazor/weddingplanner-backend/internal/logger"
	"github.com/sefazor/weddingplanner-backend/internal/middleware"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"github.com/sefazor/weddingplanner-backend/internal/service"
)

// New builds the fiber app with all middleware and the route table.
func New(
	cfg *config.Config,
	sessions *service.SessionService,
	authHandler *handler.AuthHandler,
	weddingHandler *handler.WeddingHandler,
	rsvpHandler *handler.RSVPHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))
	app.Use(middleware.SessionMiddleware(sessions, cfg.SessionCookie))

	// Public routes
	app.Get("/", weddingHandler.Index)
	app.Post("/register", authHandler.Register)
	app.Post("/checkLogin", authHandler.CheckLogin)

	// Protected routes
	app.Use(middleware.RequireSession())
	{
		app.Get("/dashboard", weddingHandler.Dashboard)
		app.Get("/logout", authHandler.Logout)
		app.Get("/wedding/new", weddingHandler.NewWedding)
		app.Post("/wedding/create", weddingHandler.CreateWedding)
		app.Get("/viewwedding/:weddingId", weddingHandler.ViewWedding)
		app.Get("/wedding/:weddingId/delete", weddingHandler.DeleteWedding)
		app.Get("/rsvp/:weddingId", rsvpHandler.RSVP)
		app.Get("/unrsvp/:weddingId", rsvpHandler.UnRSVP)
	}

	return app
}

// errorHandler turns anything a handler did not map itself into a generic
// server-error envelope carrying the request id as correlation identifier.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	reqID := c.GetRespHeader(fiber.HeaderXRequestID)

	if code >= fiber.StatusInternalServerError {
		zaplog.Log.Errorw("unhandled error", "request_id", reqID, "path", c.Path(), "err", err)
		return c.Status(code).JSON(models.Response{
			Success:   false,
			Error:     "Something went wrong",
			RequestID: reqID,
		})
	}

	return c.Status(code).JSON(models.Response{
		Success:   false,
		Error:     err.Error(),
		RequestID: reqID,
	})
}
