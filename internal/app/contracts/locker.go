package contracts

import (
	"context"
	"time"
)

// LockerService is a best-effort distributed lock used to keep multiple
// instances from running the same background pass at once.
type LockerService interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
