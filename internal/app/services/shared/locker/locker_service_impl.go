package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

type lockService struct {
	RedisClient *redis.Client
	Log         *zap.Logger
}

func NewLockService(redisClient *redis.Client, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			RedisClient: redisClient,
			Log:         logger,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockValue := uuid.NewString()
	acquired, err := s.RedisClient.SetNX(ctx, key, lockValue, ttl).Result()
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redis SetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", exceptions.ErrRedisLock(err)
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("lock_key", key),
		)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("lock_key", key),
		zap.String("lock_value", lockValue),
	)
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	storedVal, err := s.RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		s.Log.Info("lockService.Unlock no lock found to release",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("lock_key", key),
		)
		return nil
	}
	if err != nil {
		s.Log.Error("lockService.Unlock error retrieving lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisLock(err)
	}

	if storedVal != lockValue {
		err := exceptions.ErrRedisLock(fmt.Errorf("lock not owned by this client"))
		s.Log.Error("lockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("lock_key", key),
			zap.Error(err),
		)
		return err
	}

	if err := s.RedisClient.Del(ctx, key).Err(); err != nil {
		s.Log.Error("lockService.Unlock error deleting lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisLock(err)
	}

	s.Log.Info("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("lock_key", key),
	)
	return nil
}
