package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contentshare/internal/auth"
	"contentshare/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.SessionStore,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	contentHandler *handler.ContentHandler,
	favoriteHandler *handler.FavoriteHandler,
	ratingHandler *handler.RatingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Login lives at the root, outside /api.
	e.POST("/login", authHandler.Login)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)

	// Secured routes: bearer token compared against the session slot.
	secured := api.Group("", auth.Middleware(sessions))

	// User routes (self only)
	secured.GET("/user/:id", userHandler.Get)
	secured.PUT("/user/:id", userHandler.Update)
	secured.DELETE("/user/:id", userHandler.Delete)

	// Content routes. The static /content/favorites route wins over
	// /content/:id, so favorites listing is not shadowed.
	secured.POST("/content", contentHandler.Create)
	secured.GET("/content/", contentHandler.List)
	secured.GET("/content/:id", contentHandler.Get)
	secured.POST("/content/:id", contentHandler.Update)
	secured.DELETE("/content/:id", contentHandler.Delete)

	// Favorite routes
	secured.GET("/content/favorites", favoriteHandler.List)
	secured.POST("/content/:id/favorite", favoriteHandler.Favorite)
	secured.DELETE("/content/:id/favorite", favoriteHandler.Unfavorite)

	// Rating routes
	secured.POST("/content/:id/rate", ratingHandler.Rate)
	secured.DELETE("/content/:id/rate", ratingHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
