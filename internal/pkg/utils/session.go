package utils

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
)

func GetSession(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session, ok
}
