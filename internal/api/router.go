package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/course-api/docs"
	"github.com/99minutos/course-api/internal/api/handler"
	"github.com/99minutos/course-api/internal/api/middleware"
	"github.com/99minutos/course-api/internal/core/ports"
)

const metricsSubsystem = "course_api"

// Deps are the collaborators the router wires into handlers. HealthChecks may
// be empty.
type Deps struct {
	Auth         ports.Authenticator
	Courses      ports.CourseService
	Users        ports.UserService
	HealthChecks map[string]handler.HealthCheck
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddleware(metricsSubsystem))

	courseHandler := handler.NewCourseHandler(deps.Courses)
	userHandler := handler.NewUserHandler(deps.Users)
	healthHandler := handler.NewHealthHandler(deps.HealthChecks, deps.Logger)
	requireUser := middleware.BasicAuth(deps.Auth, deps.Logger)

	// --- Courses: reads are public, writes need a principal ---
	courses := e.Group("/courses")
	courses.GET("", courseHandler.List)
	courses.GET("/:id", courseHandler.Get)
	courses.POST("", courseHandler.Create, requireUser)
	courses.PUT("/:id", courseHandler.Update, requireUser)
	courses.DELETE("/:id", courseHandler.Delete, requireUser)

	// --- Users ---
	e.GET("/users", userHandler.Current, requireUser)
	e.POST("/users", userHandler.Signup)

	// --- Ops ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
