package alert

import (
	"context"

	"github.com/Osvaldowo/EncontradOS/internal/domain"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock.go

// Dispatcher hands a decided notification intent over for delivery.
// Delivery is fire-and-forget: a failed dispatch is "shown, not guaranteed
// seen" and never rolls back the notified mark.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent domain.NotificationIntent) error
}
