package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sedbms/internal/access"
	"sedbms/internal/auth"
	"sedbms/internal/handler"
	"sedbms/internal/logger"
	"sedbms/internal/metrics"
	"sedbms/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	studentHandler *handler.StudentHandler,
	subjectHandler *handler.SubjectHandler,
	markHandler *handler.MarkHandler,
	reportHandler *handler.ReportHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Output: logger.GetInstance().Writer(),
	}))
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Secured routes accept the token as a bearer header or the session cookie.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: jwtService.Secret(),
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return auth.NewClaims()
			},
			TokenLookup:  "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + handler.SessionCookie,
			ErrorHandler: handler.TokenError,
		}),
		handler.Session(authService),
	)

	view := handler.Require(access.ActionView)

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", authHandler.Me, view)
	secured.GET("/dashboard", reportHandler.Dashboard, view)

	// Students
	secured.GET("/students", studentHandler.List, view)
	secured.POST("/students", studentHandler.Create, handler.Require(access.ActionCreateStudent))
	secured.GET("/students/:usn", studentHandler.Get, view)
	secured.DELETE("/students/:usn", studentHandler.Delete, handler.Require(access.ActionDeleteStudent))

	// Subjects
	secured.GET("/subjects", subjectHandler.List, view)
	secured.POST("/subjects", subjectHandler.Create, handler.Require(access.ActionCreateSubject))

	// Marks
	secured.GET("/marks", markHandler.List, view)
	secured.POST("/marks", markHandler.Upsert, handler.Require(access.ActionUpsertMark))

	// Reports
	secured.GET("/reports/:usn", reportHandler.StudentReport, view)

	secured.POST("/admin/seed", seedHandler.Seed, handler.Require(access.ActionSeed))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
