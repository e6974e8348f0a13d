package handler

import (
	"net/http"

	"estate-office-saas/internal/dto"
	"estate-office-saas/internal/middleware"
	"estate-office-saas/internal/model"
	"estate-office-saas/internal/service"

	"github.com/labstack/echo/v4"
)

type OfficeHandler struct {
	officeService service.OfficeService
	crmService    service.CrmService
}

func NewOfficeHandler(officeService service.OfficeService, crmService service.CrmService) *OfficeHandler {
	return &OfficeHandler{
		officeService: officeService,
		crmService:    crmService,
	}
}

func actorOrUnauthorized(c echo.Context) (service.Actor, error) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return service.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing actor")
	}
	return actor, nil
}

func (h *OfficeHandler) CreateOffice(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := actorOrUnauthorized(c)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleSuperAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "super admin only")
	}

	var req dto.CreateOfficeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	office, err := h.officeService.CreateOffice(ctx, &req)
	if err != nil {
		if err == service.ErrInvalidOffice {
			return echo.NewHTTPError(http.StatusBadRequest, "office name is required")
		}
		return err
	}

	return c.JSON(http.StatusCreated, office)
}

func (h *OfficeHandler) ListOffices(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := actorOrUnauthorized(c)
	if err != nil {
		return err
	}

	offices, err := h.officeService.ListOffices(ctx, actor, c.QueryParam("search"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, offices)
}

func (h *OfficeHandler) GetOffice(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := actorOrUnauthorized(c)
	if err != nil {
		return err
	}

	officeID, err := officeIDFromPath(c)
	if err != nil {
		return err
	}

	office, err := h.officeService.GetOffice(ctx, actor, officeID)
	if err != nil {
		if err == service.ErrOfficeForbidden {
			return echo.NewHTTPError(http.StatusForbidden, "office not accessible")
		}
		return echo.NewHTTPError(http.StatusNotFound, "office not found")
	}

	return c.JSON(http.StatusOK, office)
}

func (h *OfficeHandler) CreateListing(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := actorOrUnauthorized(c)
	if err != nil {
		return err
	}

	officeID, err := officeIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	listing, err := h.crmService.CreateListing(ctx, actor, officeID, &req)
	if err != nil {
		switch err {
		case service.ErrOfficeForbidden:
			return echo.NewHTTPError(http.StatusForbidden, "office not accessible")
		case service.ErrInvalidListing:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid listing")
		}
		return err
	}

	return c.JSON(http.StatusCreated, listing)
}

func (h *OfficeHandler) ListListings(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := actorOrUnauthorized(c)
	if err != nil {
		return err
	}

	officeID, err := officeIDFromPath(c)
	if err != nil {
		return err
	}

	listings, err := h.crmService.ListListings(ctx, actor, officeID, model.ListingKind(c.QueryParam("kind")))
	if err != nil {
		if err == service.ErrOfficeForbidden {
			return echo.NewHTTPError(http.StatusForbidden, "office not accessible")
		}
		return err
	}

	return c.JSON(http.StatusOK, listings)
}

func (h *OfficeHandler) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := actorOrUnauthorized(c)
	if err != nil {
		return err
	}

	officeID, err := officeIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	customer, err := h.crmService.CreateCustomer(ctx, actor, officeID, &req)
	if err != nil {
		switch err {
		case service.ErrOfficeForbidden:
			return echo.NewHTTPError(http.StatusForbidden, "office not accessible")
		case service.ErrInvalidCustomer:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid customer")
		}
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

func (h *OfficeHandler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := actorOrUnauthorized(c)
	if err != nil {
		return err
	}

	officeID, err := officeIDFromPath(c)
	if err != nil {
		return err
	}

	customers, err := h.crmService.ListCustomers(ctx, actor, officeID, c.QueryParam("search"))
	if err != nil {
		if err == service.ErrOfficeForbidden {
			return echo.NewHTTPError(http.StatusForbidden, "office not accessible")
		}
		return err
	}

	return c.JSON(http.StatusOK, customers)
}
