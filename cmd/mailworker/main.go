package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	sharedstorage "medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/go-gomail/gomail"
	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// worker consumes queued notifications and delivers them over SMTP. It runs
// as its own process so slow SMTP never backs up the API.
type worker struct {
	log      *logrus.Logger
	dialer   *gomail.Dialer
	storage  contracts.Storage
	sender   string
	smtpHost string
	limiter  *rate.Limiter
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	defer rabbitMQ.Close()

	channel, err := rabbitMQ.Channel()
	if err != nil {
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}
	defer channel.Close()

	queueName := internalConfig.App.RabbitMQMailerQueue
	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Fatalf("Failed to declare queue %s: %v", queueName, err)
	}

	if err := channel.Qos(1, 0, false); err != nil {
		log.Fatalf("Failed to set channel QoS: %v", err)
	}

	deliveries, err := channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to start consuming queue %s: %v", queueName, err)
	}

	minioClient := storage.NewMinio(driverConfig)
	minioStorage := sharedstorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)

	sendsPerSecond := internalConfig.App.MailerSendsPerSecond
	if sendsPerSecond <= 0 {
		sendsPerSecond = 1
	}

	w := &worker{
		log:      log,
		dialer:   mailer.NewSMTPDialer(driverConfig),
		storage:  minioStorage,
		sender:   driverConfig.SMTP.EmailSender,
		smtpHost: driverConfig.SMTP.Host,
		limiter:  rate.NewLimiter(rate.Limit(sendsPerSecond), 1),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info("Shutting down mail worker..")
		cancel()
	}()

	log.Infof("Mail worker consuming queue %s", queueName)

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, open := <-deliveries:
			if !open {
				log.Warn("Delivery channel closed, exiting")
				return
			}
			w.handleDelivery(ctx, delivery)
		}
	}
}

func (w *worker) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	message := new(requests.NotificationMessage)
	if err := json.Unmarshal(delivery.Body, message); err != nil {
		w.log.WithError(err).Error("Dropping message with malformed payload")
		delivery.Nack(false, false)
		return
	}

	subject, body, ok := renderEmail(message)
	if !ok {
		w.log.WithField("kind", message.Kind).Error("Dropping message with unknown template kind")
		delivery.Nack(false, false)
		return
	}

	if !validRecipient(message.To) {
		w.log.WithField("to", message.To).Error("Dropping message with malformed recipient address")
		delivery.Nack(false, false)
		return
	}

	if err := w.limiter.Wait(ctx); err != nil {
		delivery.Nack(false, true)
		return
	}

	if err := w.send(ctx, message, subject, body); err != nil {
		w.log.WithError(err).WithFields(logrus.Fields{
			"kind":       message.Kind,
			"message_id": message.ID,
		}).Error("Failed to send email, requeueing")
		delivery.Nack(false, !delivery.Redelivered)
		return
	}

	w.log.WithFields(logrus.Fields{
		"kind":       message.Kind,
		"message_id": message.ID,
	}).Info("Email sent")
	delivery.Ack(false)
}

func (w *worker) send(ctx context.Context, message *requests.NotificationMessage, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", w.sender, constvars.EmailSenderName)
	m.SetHeader("To", message.To)
	m.SetHeader("Subject", subject)
	m.SetBody(constvars.MIMETextHTML, body)

	if message.Kind == constvars.TemplatePrescriptionIssued && message.DocumentObject != "" {
		attachment, err := w.storage.GetObject(ctx, message.DocumentObject)
		if err != nil {
			// The download link in the body still works, send without it.
			w.log.WithError(err).Warn("Could not fetch prescription attachment")
		} else {
			m.Attach(constvars.EmailPrescriptionAttachmentName, gomail.SetCopyFunc(func(writer io.Writer) error {
				_, err := writer.Write(attachment)
				return err
			}))
		}
	}

	if err := w.dialer.DialAndSend(m); err != nil {
		return exceptions.ErrSMTPSendEmail(err, w.smtpHost)
	}
	return nil
}
