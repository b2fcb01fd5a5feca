package applications

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the application review handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new applications handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

// statusForm carries the reviewer's decision.
type statusForm struct {
	Status string `form:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

// paymentForm marks an application's entry fee as settled.
type paymentForm struct {
	PaymentMethod string `form:"paymentMethod" validate:"required,oneof=CASH CARD BANK_TRANSFER"`
	PaymentRef    string `form:"paymentRef"`
}

// ListGet serves the application queue, filtered by status. The queue
// defaults to pending applications, which is the reviewer's working set.
func (h *Handler) ListGet(c echo.Context) error {
	status := api.FranchiseApplicationStatus(c.QueryParam("status"))
	if status == "" {
		status = api.ApplicationPending
	}

	ctx := c.Request().Context()
	list, err := h.client.Applications.ListAdmin(ctx, status)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to load applications."))
	}

	// Reviewers decide against the published contract; the page degrades
	// without it.
	terms, _ := h.client.Terms.Get(ctx)

	accent := h.profiles.Snapshot().Preferences.AccentColor
	return h.renderer.RenderPage(c, http.StatusOK, ListPage(c, accent, status, list, terms))
}

// StatusPost applies an approve/reject decision.
func (h *Handler) StatusPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	var form statusForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Unknown application status.")
		return c.Redirect(http.StatusSeeOther, "/franchise-applications")
	}

	status := api.FranchiseApplicationStatus(form.Status)
	if _, err := h.client.Applications.UpdateStatus(c.Request().Context(), id, status); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to update the application."))
	} else {
		view.SetFlashSuccess(c, "Application updated.")
	}
	return c.Redirect(http.StatusSeeOther, "/franchise-applications")
}

// PaymentPost records the entry fee payment for an application.
func (h *Handler) PaymentPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	var form paymentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "A payment method is required.")
		return c.Redirect(http.StatusSeeOther, "/franchise-applications")
	}

	method := api.PaymentMethod(form.PaymentMethod)
	patch := api.FranchiseApplicationPatch{
		Paid:          api.Ptr(true),
		PaymentMethod: &method,
	}
	if form.PaymentRef != "" {
		patch.PaymentRef = &form.PaymentRef
	}

	if _, err := h.client.Applications.UpdatePayment(c.Request().Context(), id, patch); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to record the payment."))
	} else {
		view.SetFlashSuccess(c, "Payment recorded.")
	}
	return c.Redirect(http.StatusSeeOther, "/franchise-applications")
}
