package ports

import "context"

// EventPublisher notifies other instances about auth state changes.
type EventPublisher interface {
	PublishLogin(ctx context.Context, address string) error
	PublishLogout(ctx context.Context, address string) error
}
