package profilepage

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/rendering"
	"github.com/drivncook/backoffice/internal/view"
)

// Handler holds dependencies for the profile HTTP handlers.
type Handler struct {
	profiles *profile.Manager
	renderer rendering.Renderer
}

// NewHandler creates a new profile handler.
func NewHandler(profiles *profile.Manager, r rendering.Renderer) *Handler {
	return &Handler{profiles: profiles, renderer: r}
}

// profileForm edits the backend profile and the local preferences in one
// submission. Empty fields leave the corresponding value untouched.
type profileForm struct {
	FirstName     string `form:"firstName"`
	LastName      string `form:"lastName"`
	Phone         string `form:"phone"`
	CompanyName   string `form:"companyName"`
	Address       string `form:"address"`
	AccentColor   string `form:"accentColor" validate:"omitempty,hexcolor"`
	AvatarDataURL string `form:"avatarDataUrl" validate:"omitempty,datauri"`
}

// ProfileGet refreshes the profile from the backend and renders it. A failed
// refresh still renders the page; the snapshot carries the error message.
func (h *Handler) ProfileGet(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.profiles.Load(ctx); err != nil {
		middleware.FromContext(ctx).Warn("Profile load failed", "error", err)
	}
	return h.renderer.RenderPage(c, http.StatusOK, Page(c, h.profiles.Snapshot()))
}

// ProfilePost submits profile edits and preference changes.
func (h *Handler) ProfilePost(c echo.Context) error {
	var form profileForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Accent color must be a hex color and the avatar a data URI.")
		return c.Redirect(http.StatusSeeOther, "/profile")
	}

	patch := api.FranchiseePatch{}
	if form.FirstName != "" {
		patch.FirstName = &form.FirstName
	}
	if form.LastName != "" {
		patch.LastName = &form.LastName
	}
	if form.Phone != "" {
		patch.Phone = &form.Phone
	}
	if form.CompanyName != "" {
		patch.CompanyName = &form.CompanyName
	}
	if form.Address != "" {
		patch.Address = &form.Address
	}

	prefs := api.ProfilePreferences{
		AccentColor:   form.AccentColor,
		AvatarDataURL: form.AvatarDataURL,
	}

	if err := h.profiles.Submit(c.Request().Context(), patch, prefs); err != nil {
		view.SetFlashError(c, api.ErrorMessage(err, "Unable to save the profile."))
	} else {
		view.SetFlashSuccess(c, "Profile saved.")
	}
	return c.Redirect(http.StatusSeeOther, "/profile")
}

// ResetPost restores the default preferences and clears the held profile.
func (h *Handler) ResetPost(c echo.Context) error {
	h.profiles.Reset()
	view.SetFlashSuccess(c, "Preferences reset.")
	return c.Redirect(http.StatusSeeOther, "/profile")
}
