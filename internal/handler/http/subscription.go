package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/subscription"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/response"
)

type SubscriptionHandler interface {
	GetMySubscription(w http.ResponseWriter, r *http.Request)
}

type subscriptionHandlerImpl struct {
	subscriptionService subscription.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandlerImpl{subscriptionService: subscriptionService}
}

// GetMySubscription implements SubscriptionHandler
func (h *subscriptionHandlerImpl) GetMySubscription(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.subscriptionService.GetMySubscription(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
