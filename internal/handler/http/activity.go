package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/activity"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	ListActivity(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

// ListActivity implements ActivityHandler
func (h *activityHandlerImpl) ListActivity(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "unauthorized")
		return
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		response.Forbidden(w, "no company associated with this user")
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	results, err := h.activityService.List(r.Context(), companyID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
