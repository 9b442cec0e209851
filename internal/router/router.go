package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"assomap/internal/config"
	"assomap/internal/handler"
)

// Register wires routes and middleware. Reads stay public so the map and
// feed screens work without a session; every mutation sits behind JWT.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	imageHandler *handler.ImageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded files are served straight from disk under the same path the
	// stored URLs reference.
	e.Static("/images/projets", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/utilisateurs", authHandler.Register)
	api.POST("/utilisateurs/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/utilisateurs", userHandler.ListUsers)
	api.GET("/utilisateurs/:id", userHandler.GetUser)
	api.GET("/utilisateurs/:id/projets", userHandler.ListUserProjects)

	api.GET("/projets", projectHandler.ListProjects)
	api.GET("/projets/explore", projectHandler.Explore)
	api.GET("/projets/:id", projectHandler.GetProject)
	api.GET("/projets/:id/images", projectHandler.ListProjectImages)

	api.GET("/images", imageHandler.ListImages)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.PUT("/utilisateurs/:id", userHandler.UpdateUser)
	secured.DELETE("/utilisateurs/:id", userHandler.DeleteUser)

	secured.POST("/projets", projectHandler.CreateProject)
	secured.PUT("/projets/:id", projectHandler.UpdateProject)
	secured.DELETE("/projets/:id", projectHandler.DeleteProject)
	secured.DELETE("/projets/:id/images", projectHandler.DeleteProjectImages)

	secured.POST("/images", imageHandler.Upload)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
