package interfaces

import "context"

// IEventPublisher emits booking lifecycle events for the admin dashboard.
// Publishing is best effort; callers log and continue on failure.
type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
