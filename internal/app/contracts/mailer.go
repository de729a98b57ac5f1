package contracts

import (
	"context"

	"medibook-service/internal/pkg/dto/requests"
)

// MailerService publishes notification payloads for asynchronous delivery.
// Callers treat it as fire-and-observe: a publish failure is logged and never
// unwinds persisted state.
type MailerService interface {
	Publish(ctx context.Context, message *requests.NotificationMessage) error
}
