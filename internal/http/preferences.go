package http

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	adminnav "github.com/goliatone/go-admin-nav/nav"
)

type defaultNavResponse struct {
	DefaultNav []adminnav.NavGroup `json:"defaultNav"`
	AfterNav   []string            `json:"afterNav"`
	BasePath   string              `json:"basePath"`
}

type preferencesResponse struct {
	NavLayout *adminnav.NavLayout `json:"navLayout"`
	Version   *int                `json:"version"`
}

type savePreferencesPayload struct {
	NavLayout *adminnav.NavLayout `json:"navLayout"`
}

func (p savePreferencesPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.NavLayout, validation.Required),
	)
}

type successResponse struct {
	Success bool `json:"success"`
}

// handleDefaultNav serves the generated default layout. No authentication:
// the default structure carries no per-user data.
func (api *NavAPI) handleDefaultNav(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.layouts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	groups, err := api.layouts.Defaults(r.Context())
	if err != nil {
		api.logger.Error("default nav lookup failed", "error", err)
		writeError(w, err)
		return
	}
	if groups == nil {
		groups = []adminnav.NavGroup{}
	}

	afterNav := api.afterNav
	if afterNav == nil {
		afterNav = []string{}
	}

	writeJSON(w, http.StatusOK, defaultNavResponse{
		DefaultNav: groups,
		AfterNav:   afterNav,
		BasePath:   api.basePath,
	})
}

func (api *NavAPI) handlePreferencesGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.authenticate(w, r)
	if !ok {
		return
	}

	layout, err := api.layouts.Preference(r.Context(), userID)
	if err != nil {
		api.logger.Error("preference lookup failed", "user_id", userID.String(), "error", err)
		writeError(w, err)
		return
	}

	// Both fields stay null until a layout has been saved.
	response := preferencesResponse{NavLayout: layout}
	if layout != nil {
		version := layout.Version
		if version == 0 {
			version = adminnav.LayoutVersion
		}
		response.Version = &version
	}
	writeJSON(w, http.StatusOK, response)
}

func (api *NavAPI) handlePreferencesSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.authenticate(w, r)
	if !ok {
		return
	}

	var payload savePreferencesPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := api.layouts.Save(r.Context(), userID, payload.NavLayout.Groups); err != nil {
		api.logger.Error("preference save failed", "user_id", userID.String(), "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// handlePreferencesReset deletes the stored layout. Resetting a user who has
// no stored layout succeeds; the outcome is the same either way.
func (api *NavAPI) handlePreferencesReset(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.authenticate(w, r)
	if !ok {
		return
	}

	if err := api.layouts.Reset(r.Context(), userID); err != nil {
		api.logger.Error("preference reset failed", "user_id", userID.String(), "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (api *NavAPI) authenticate(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if api == nil || api.layouts == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return uuid.Nil, false
	}
	userID, ok := api.resolver(r)
	if !ok || userID == uuid.Nil {
		writeError(w, ErrUnauthenticated)
		return uuid.Nil, false
	}
	return userID, true
}
