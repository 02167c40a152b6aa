package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/subscription"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/response"
)

// SubscriptionMiddleware enforces plan quotas before mutating handlers
// run.
type SubscriptionMiddleware struct {
	subscriptionService subscription.SubscriptionService
}

func NewSubscriptionMiddleware(subscriptionService subscription.SubscriptionService) *SubscriptionMiddleware {
	return &SubscriptionMiddleware{
		subscriptionService: subscriptionService,
	}
}

func companyIDFromToken(r *http.Request) (string, bool) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return "", false
	}
	claims, err := token.AsMap(r.Context())
	if err != nil {
		return "", false
	}
	companyID, ok := claims["company_id"].(string)
	return companyID, ok && companyID != ""
}

// RequireCanAddEmployee rejects the request when the plan's employee
// quota is already reached.
func (m *SubscriptionMiddleware) RequireCanAddEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyIDFromToken(r)
		if !ok {
			response.Forbidden(w, "no company associated with this user")
			return
		}

		allowed, err := m.subscriptionService.CanAddEmployee(r.Context(), companyID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !allowed {
			response.HandleError(w, subscription.ErrEmployeeLimitExceeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireCanAddAdvance rejects the request when the employee already
// holds the plan's maximum number of advances. The employee id comes
// from the route.
func (m *SubscriptionMiddleware) RequireCanAddAdvance(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyIDFromToken(r)
		if !ok {
			response.Forbidden(w, "no company associated with this user")
			return
		}

		employeeID := chi.URLParam(r, "id")
		if employeeID == "" {
			response.BadRequest(w, "Employee ID is required", nil)
			return
		}

		allowed, err := m.subscriptionService.CanAddAdvance(r.Context(), companyID, employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !allowed {
			response.HandleError(w, subscription.ErrAdvanceLimitExceeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}
