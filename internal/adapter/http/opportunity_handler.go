package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	mw "peerlend-backend/internal/adapter/middleware"
	domain "peerlend-backend/internal/domain/opportunity"
	ucLoan "peerlend-backend/internal/usecase/loan"
	ucOpportunity "peerlend-backend/internal/usecase/opportunity"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OpportunityHandler struct {
	uc    *ucOpportunity.Usecase
	loans *ucLoan.Usecase
	log   *slog.Logger
}

func NewOpportunityHandler(uc *ucOpportunity.Usecase, loans *ucLoan.Usecase, log *slog.Logger) *OpportunityHandler {
	return &OpportunityHandler{uc: uc, loans: loans, log: log}
}

type createOpportunityReq struct {
	Title        string          `json:"title"         validate:"required,max=200"`
	Description  string          `json:"description"   validate:"max=5000"`
	Purpose      string          `json:"purpose"       validate:"max=200"`
	RiskLevel    string          `json:"riskLevel"     validate:"required,oneof=low medium high"`
	Amount       decimal.Decimal `json:"amount"        validate:"money"`
	Term         int             `json:"term"          validate:"required,gte=1,lte=360"`
	InterestRate decimal.Decimal `json:"interestRate"  validate:"rate"`
	// RFC3339, must be in the future when present
	Deadline *time.Time `json:"deadline,omitempty"`
}

func (h *OpportunityHandler) Create(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	var req createOpportunityReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	dto, err := h.uc.Create(c.Request().Context(), p.UserID, ucOpportunity.CreateOpportunityInput{
		Title:        req.Title,
		Description:  req.Description,
		Purpose:      req.Purpose,
		RiskLevel:    req.RiskLevel,
		Amount:       req.Amount,
		Term:         req.Term,
		InterestRate: req.InterestRate,
		Deadline:     req.Deadline,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *OpportunityHandler) Get(c echo.Context) error {
	id := c.Param("opportunity_id")
	if !validID(id) {
		return writeError(c, h.log, domain.ErrNotFound)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// List supports ?status=&min_amount=&max_amount=&max_term=&min_rate=&search=
func (h *OpportunityHandler) List(c echo.Context) error {
	var f domain.Filter

	if s := c.QueryParam("status"); s != "" {
		switch st := domain.Status(s); st {
		case domain.StatusActive, domain.StatusFunded, domain.StatusClosed:
			f.Status = st
		default:
			return badQuery(c, "status")
		}
	}
	for _, q := range []struct {
		name string
		dst  *decimal.NullDecimal
	}{
		{"min_amount", &f.MinAmount},
		{"max_amount", &f.MaxAmount},
		{"min_rate", &f.MinRate},
	} {
		raw := c.QueryParam(q.name)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return badQuery(c, q.name)
		}
		*q.dst = decimal.NewNullDecimal(d)
	}
	if raw := c.QueryParam("max_term"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return badQuery(c, "max_term")
		}
		f.MaxTerm = n
	}
	f.Search = strings.TrimSpace(c.QueryParam("search"))

	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListLoans returns every contribution recorded against one opportunity.
func (h *OpportunityHandler) ListLoans(c echo.Context) error {
	id := c.Param("opportunity_id")
	if !validID(id) {
		return writeError(c, h.log, domain.ErrNotFound)
	}
	out, err := h.loans.ListByOpportunity(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
