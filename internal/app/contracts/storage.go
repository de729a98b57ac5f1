package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	GetObject(ctx context.Context, objectName string) ([]byte, error)
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
