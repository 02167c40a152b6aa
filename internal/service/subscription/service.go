package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/domain/subscription"
)

type subscriptionService struct {
	subscriptionRepo subscription.SubscriptionRepository
	employeeRepo     employee.EmployeeRepository
	advanceRepo      advance.AdvanceRepository
}

func NewSubscriptionService(
	subscriptionRepo subscription.SubscriptionRepository,
	employeeRepo employee.EmployeeRepository,
	advanceRepo advance.AdvanceRepository,
) subscription.SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		employeeRepo:     employeeRepo,
		advanceRepo:      advanceRepo,
	}
}

func (s *subscriptionService) GetMySubscription(ctx context.Context, companyID string) (subscription.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			// Companies without a subscription row fall back onto the
			// trial plan instead of being locked out.
			return s.subscriptionRepo.EnsureTrial(ctx, companyID)
		}
		return subscription.Subscription{}, err
	}
	return sub, nil
}

func (s *subscriptionService) CanAddEmployee(ctx context.Context, companyID string) (bool, error) {
	sub, err := s.GetMySubscription(ctx, companyID)
	if err != nil {
		return false, err
	}

	count, err := s.employeeRepo.CountByCompanyID(ctx, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}

	return sub.CanAddEmployee(count), nil
}

func (s *subscriptionService) CanAddAdvance(ctx context.Context, companyID string, employeeID string) (bool, error) {
	sub, err := s.GetMySubscription(ctx, companyID)
	if err != nil {
		return false, err
	}

	count, err := s.advanceRepo.CountByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to count advances: %w", err)
	}

	return sub.CanAddAdvance(count), nil
}
