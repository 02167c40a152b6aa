package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/subscription"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type subscriptionRepositoryImpl struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) subscription.SubscriptionRepository {
	return &subscriptionRepositoryImpl{db: db}
}

const subscriptionJoinQuery = `
	SELECT s.id, s.company_id, s.plan_id, s.status, s.current_period_end, s.created_at, s.updated_at,
		p.id, p.name, p.tier_level, p.max_employees, p.max_advances_per_employee, p.is_active, p.created_at
	FROM subscriptions s
	JOIN subscription_plans p ON p.id = s.plan_id
	WHERE s.company_id = $1
`

func scanSubscription(row pgx.Row) (subscription.Subscription, error) {
	var s subscription.Subscription
	var p subscription.Plan
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.PlanID, &s.Status, &s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt,
		&p.ID, &p.Name, &p.TierLevel, &p.MaxEmployees, &p.MaxAdvancesPerEmployee, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return subscription.Subscription{}, err
	}
	s.Plan = &p
	return s, nil
}

// GetByCompanyID implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSubscription(q.QueryRow(ctx, subscriptionJoinQuery, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return subscription.Subscription{}, subscription.ErrSubscriptionNotFound
		}
		return subscription.Subscription{}, err
	}
	return s, nil
}

// EnsureTrial implements subscription.SubscriptionRepository. The
// trial runs on the lowest active tier for 30 days. ON CONFLICT keeps
// the call idempotent when two requests race on a fresh company.
func (r *subscriptionRepositoryImpl) EnsureTrial(ctx context.Context, companyID string) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subscriptions (company_id, plan_id, status, current_period_end)
		SELECT $1, p.id, $2, $3
		FROM subscription_plans p
		WHERE p.is_active = TRUE
		ORDER BY p.tier_level
		LIMIT 1
		ON CONFLICT (company_id) DO NOTHING
	`

	periodEnd := time.Now().AddDate(0, 0, 30)
	if _, err := q.Exec(ctx, query, companyID, subscription.StatusTrial, periodEnd); err != nil {
		return subscription.Subscription{}, fmt.Errorf("failed to create trial subscription for company %s: %w", companyID, err)
	}

	return r.GetByCompanyID(ctx, companyID)
}
