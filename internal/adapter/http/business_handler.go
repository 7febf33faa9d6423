package http

import (
	"log/slog"
	"net/http"

	mw "peerlend-backend/internal/adapter/middleware"
	"peerlend-backend/internal/domain/business"
	ucBusiness "peerlend-backend/internal/usecase/business"
	ucOpportunity "peerlend-backend/internal/usecase/opportunity"

	"github.com/labstack/echo/v4"
)

type BusinessHandler struct {
	uc   *ucBusiness.Usecase
	opps *ucOpportunity.Usecase
	log  *slog.Logger
}

func NewBusinessHandler(uc *ucBusiness.Usecase, opps *ucOpportunity.Usecase, log *slog.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, opps: opps, log: log}
}

type createBusinessReq struct {
	Name          string  `json:"name"           validate:"required,max=200"`
	Description   string  `json:"description"    validate:"max=5000"`
	Industry      string  `json:"industry"       validate:"required,max=100"`
	Location      string  `json:"location"       validate:"required,max=200"`
	YearFounded   *int    `json:"yearFounded"    validate:"omitempty,gte=1800,lte=2100"`
	EmployeeCount *int    `json:"employeeCount"  validate:"omitempty,gte=0"`
	OwnerName     *string `json:"ownerName"      validate:"omitempty,max=200"`
	OwnerRole     *string `json:"ownerRole"      validate:"omitempty,max=100"`
}

func (h *BusinessHandler) Create(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return unauthorized(c)
	}
	var req createBusinessReq
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	dto, err := h.uc.Create(c.Request().Context(), p.UserID, ucBusiness.CreateBusinessInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BusinessHandler) Get(c echo.Context) error {
	id := c.Param("business_id")
	if !validID(id) {
		return writeError(c, h.log, business.ErrNotFound)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BusinessHandler) GetByUser(c echo.Context) error {
	id := c.Param("user_id")
	if !validID(id) {
		return writeError(c, h.log, business.ErrNotFound)
	}
	dto, err := h.uc.GetByUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListOpportunities backs the business dashboard: every opportunity plus totals.
func (h *BusinessHandler) ListOpportunities(c echo.Context) error {
	id := c.Param("business_id")
	if !validID(id) {
		return writeError(c, h.log, business.ErrNotFound)
	}
	out, err := h.opps.ListByBusiness(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
