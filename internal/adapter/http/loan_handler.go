package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	mw "peerlend-backend/internal/adapter/middleware"
	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/opportunity"
	"peerlend-backend/internal/usecase/funding"
	ucLoan "peerlend-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct {
	funding *funding.Usecase
	loans   *ucLoan.Usecase
	log     *slog.Logger
}

func NewLoanHandler(f *funding.Usecase, loans *ucLoan.Usecase, log *slog.Logger) *LoanHandler {
	return &LoanHandler{funding: f, loans: loans, log: log}
}

// createLoanReq only checks shape. Positivity, scale and contribution
// limits belong to funding.CheckAmount and answer 400.
type createLoanReq struct {
	OpportunityID string          `json:"opportunityId" validate:"required,hex32"`
	Amount        decimal.Decimal `json:"amount"`
}

// CreateLoan funds an opportunity as the authenticated lender.
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	dto, err := h.contribute(c.Request().Context(), funding.ContributeInput{
		OpportunityID: req.OpportunityID,
		LenderID:      p.UserID,
		Amount:        req.Amount,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// contribute retries exactly once when the opportunity changed underneath us.
func (h *LoanHandler) contribute(ctx context.Context, in funding.ContributeInput) (*ucLoan.LoanDTO, error) {
	dto, err := h.funding.Contribute(ctx, in)
	if errors.Is(err, opportunity.ErrConflict) {
		dto, err = h.funding.Contribute(ctx, in)
	}
	return dto, err
}

// GetLoan is visible to the lender who made it; anyone else gets 404.
func (h *LoanHandler) GetLoan(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	id := c.Param("loan_id")
	if !validID(id) {
		return writeError(c, h.log, loan.ErrNotFound)
	}
	dto, err := h.loans.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if dto.LenderID != p.UserID {
		return writeError(c, h.log, loan.ErrNotFound)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListByUser(c echo.Context) error {
	id := c.Param("user_id")
	if !validID(id) {
		return badParam(c, "user_id")
	}
	out, err := h.loans.ListByLender(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Portfolio(c echo.Context) error {
	id := c.Param("user_id")
	if !validID(id) {
		return badParam(c, "user_id")
	}
	out, err := h.loans.Portfolio(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
