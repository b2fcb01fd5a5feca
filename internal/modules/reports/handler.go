package reports

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the report HTTP handlers.
type Handler struct {
	client   *api.Client
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new reports handler.
func NewHandler(client *api.Client, profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{client: client, profiles: profiles, renderer: r}
}

// requestForm asks the backend for a PDF report.
type requestForm struct {
	Type         string `form:"type" validate:"required,oneof=SALES_STATS TOP_ITEMS REVENUE"`
	From         string `form:"from" validate:"required"`
	To           string `form:"to" validate:"required"`
	FranchiseeID int64  `form:"franchiseeId"`
}

// FormGet serves the report request form.
func (h *Handler) FormGet(c echo.Context) error {
	franchisees, err := h.client.Franchisees.List(c.Request().Context())
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Reports: franchisee list unavailable", "error", err)
	}

	accent := h.profiles.Snapshot().Preferences.AccentColor
	return h.renderer.RenderPage(c, http.StatusOK, FormPage(c, accent, franchisees))
}

// DownloadPost requests the PDF upstream and streams it back to the browser
// as an attachment.
func (h *Handler) DownloadPost(c echo.Context) error {
	var form requestForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Report type and date range are required.")
		return c.Redirect(http.StatusSeeOther, "/reports")
	}

	payload := api.ReportRequest{
		Type:         api.ReportType(form.Type),
		From:         form.From,
		To:           form.To,
		FranchiseeID: form.FranchiseeID,
	}
	download, err := h.client.Reports.Request(c.Request().Context(), payload)
	if err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to generate the report."))
		return c.Redirect(http.StatusSeeOther, "/reports")
	}

	name := download.FileName
	if name == "" {
		name = fmt.Sprintf("report-%s-%s.pdf", form.From, form.To)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "application/pdf", download.Data)
}
