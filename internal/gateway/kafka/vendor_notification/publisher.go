package vendor_notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"onboarding/internal/entities"
	retrierconfig "onboarding/pkg/retrier"
	"onboarding/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type message struct {
	VendorID  int64  `json:"vendor_id"`
	RiderID   string `json:"rider_id"`
	RiderName string `json:"rider_name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
	Location  string `json:"location"`
}

// Publisher отправляет уведомления вендорам в Kafka. Ключ сообщения - id вендора,
// все записи одного вендора попадают в одну партицию.
type Publisher struct {
	producer producer
	topic    string
	retrier  *backoff_adapter.Retrier
}

func New(producer producer, topic string) *Publisher {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (p *Publisher) NotifyVendor(ctx context.Context, notifications []entities.VendorNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(notifications))
	for _, n := range notifications {
		payload, err := json.Marshal(message(n))
		if err != nil {
			return fmt.Errorf("encode vendor notification for rider %s: %w", n.RiderID, err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(strconv.FormatInt(n.VendorID, 10)),
			Value: sarama.ByteEncoder(payload),
		})
	}

	// на повторе отправляются только сообщения, которые брокер не принял
	toSend := msgs
	start := time.Now()
	attempts, err := p.retrier.Attempts(ctx, func(context.Context) error {
		err := p.producer.SendMessages(toSend)
		var perrs sarama.ProducerErrors
		if errors.As(err, &perrs) {
			toSend = failedMessages(perrs)
		}
		return err
	})
	PublishDuration.Observe(time.Since(start).Seconds())
	if attempts > 1 {
		PublishRetriesTotal.Inc()
	}

	if err != nil {
		PublishedMessagesTotal.WithLabelValues("failed").Add(float64(len(toSend)))
		PublishedMessagesTotal.WithLabelValues("published").Add(float64(len(msgs) - len(toSend)))
		return fmt.Errorf("publish %d of %d vendor notifications: %w", len(toSend), len(msgs), err)
	}

	PublishedMessagesTotal.WithLabelValues("published").Add(float64(len(msgs)))
	return nil
}

func failedMessages(perrs sarama.ProducerErrors) []*sarama.ProducerMessage {
	out := make([]*sarama.ProducerMessage, 0, len(perrs))
	for _, perr := range perrs {
		out = append(out, perr.Msg)
	}
	return out
}

func isRetryable(err error) bool {
	return retrierconfig.UnlessCanceled(err)
}
