package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"estate-office-saas/internal/dto"
	"estate-office-saas/internal/middleware"
	"estate-office-saas/internal/model"
	"estate-office-saas/internal/service"

	"github.com/labstack/echo/v4"
)

type BillingHandler struct {
	billingService service.BillingService
	officeService  service.OfficeService
	panelURL       string
}

func NewBillingHandler(billingService service.BillingService, officeService service.OfficeService, panelURL string) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		officeService:  officeService,
		panelURL:       panelURL,
	}
}

func officeIDFromPath(c echo.Context) (int64, error) {
	officeID, err := strconv.ParseInt(c.Param("officeID"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid office id")
	}
	return officeID, nil
}

func (h *BillingHandler) Purchase(c echo.Context) error {
	ctx := c.Request().Context()

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing actor")
	}

	var req dto.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	allowed, err := h.officeService.CanAccessOffice(ctx, actor, req.OfficeID)
	if err != nil {
		return err
	}
	if !allowed {
		return echo.NewHTTPError(http.StatusForbidden, "office not accessible")
	}

	result, err := h.billingService.InitiatePurchase(ctx, req.OfficeID, req.Plan)
	if err != nil {
		if err == service.ErrPlanNotPurchasable {
			return echo.NewHTTPError(http.StatusBadRequest, "plan cannot be purchased")
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Callback is where the gateway redirects the payer after the hosted payment
// page. The gateway sends the two query params under either casing depending
// on the integration mode, so both are accepted. The response is always a
// redirect back to the panel's subscription settings with one indicator.
func (h *BillingHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	status := c.QueryParam("Status")
	if status == "" {
		status = c.QueryParam("status")
	}
	authority := c.QueryParam("Authority")
	if authority == "" {
		authority = c.QueryParam("authority")
	}

	outcome := h.billingService.HandleCallback(ctx, status, authority)

	target := fmt.Sprintf("%s/settings/subscription?payment=%s", h.panelURL, outcome)
	return c.Redirect(http.StatusFound, target)
}

func (h *BillingHandler) GetSubscription(c echo.Context) error {
	ctx := c.Request().Context()

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing actor")
	}

	officeID, err := officeIDFromPath(c)
	if err != nil {
		return err
	}

	allowed, err := h.officeService.CanAccessOffice(ctx, actor, officeID)
	if err != nil {
		return err
	}
	if !allowed {
		return echo.NewHTTPError(http.StatusForbidden, "office not accessible")
	}

	sub, err := h.billingService.GetSubscription(ctx, officeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "subscription not found")
	}

	return c.JSON(http.StatusOK, sub)
}

// AdjustSubscription is the manual back-office override and stays reserved
// for unrestricted admins.
func (h *BillingHandler) AdjustSubscription(c echo.Context) error {
	ctx := c.Request().Context()

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing actor")
	}
	if actor.Role != model.RoleSuperAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "super admin only")
	}

	officeID, err := officeIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.AdjustSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.billingService.AdjustSubscription(ctx, officeID, &req); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
