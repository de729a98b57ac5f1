package mailer

import (
	"context"
	"sync"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
)

type mailerService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	var initErr error
	onceMailerService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}

		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			initErr = err
			return
		}

		mailerServiceInstance = &mailerService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return mailerServiceInstance, nil
}

func (s *mailerService) Publish(ctx context.Context, message *requests.NotificationMessage) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    message.ID,
	}

	if err := s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, publishing); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("mailerService.Publish queued notification",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingTemplateKindKey, message.Kind),
		zap.String("message_id", message.ID),
	)
	return nil
}
