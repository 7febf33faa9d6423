package http

import (
	"context"
	"log/slog"

	mw "peerlend-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Health        *Handler
	Opportunities *OpportunityHandler
	Loans         *LoanHandler
	Businesses    *BusinessHandler
	Activities    *ActivityHandler
}

// NewEcho builds the server with validation, panic recovery and request logging to log.
func NewEcho(log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.Use(
		middleware.Recover(),
		middleware.BodyLimit("1M"),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:   true,
			LogURI:      true,
			LogStatus:   true,
			LogLatency:  true,
			LogError:    true,
			HandleError: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				attrs := []slog.Attr{
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
				}
				if p, ok := mw.PrincipalFrom(c); ok {
					attrs = append(attrs, slog.String("user_id", p.UserID))
				}
				level := slog.LevelInfo
				if v.Error != nil {
					level = slog.LevelError
					attrs = append(attrs, slog.String("error", v.Error.Error()))
				}
				log.LogAttrs(context.Background(), level, "request", attrs...)
				return nil
			},
		}),
	)
	return e
}

// Register mounts every route. idempotency guards the mutating routes and
// runs after authentication so it can key on the caller.
func (h Handlers) Register(e *echo.Echo, tokens *mw.TokenManager, idempotency echo.MiddlewareFunc) {
	auth := mw.Authenticate(tokens)
	lender := mw.RequireUserType(mw.UserLender)
	business := mw.RequireUserType(mw.UserBusiness)
	self := mw.RequireSelf("user_id")

	e.GET("/health", h.Health.Health)

	e.GET("/opportunities", h.Opportunities.List)
	e.GET("/opportunities/:opportunity_id", h.Opportunities.Get)
	e.GET("/opportunities/:opportunity_id/loans", h.Opportunities.ListLoans)
	e.POST("/opportunities", h.Opportunities.Create, auth, business, idempotency)

	e.POST("/businesses", h.Businesses.Create, auth, business, idempotency)
	e.GET("/businesses/:business_id", h.Businesses.Get)
	e.GET("/businesses/:business_id/opportunities", h.Businesses.ListOpportunities)
	e.GET("/users/:user_id/business", h.Businesses.GetByUser)

	e.POST("/loans", h.Loans.CreateLoan, auth, lender, idempotency)
	e.GET("/loans/:loan_id", h.Loans.GetLoan, auth)
	e.GET("/users/:user_id/loans", h.Loans.ListByUser, auth, self)
	e.GET("/users/:user_id/portfolio", h.Loans.Portfolio, auth, self)

	e.GET("/community-activities", h.Activities.List)
}
