package rider_eligibility_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"onboarding/internal/entities"
	"onboarding/pkg/logger"
)

type eligibilityEvent struct {
	RiderID  string `json:"rider_id"`
	Workflow string `json:"workflow"`
	Eligible *bool  `json:"eligible"`
}

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	return &Handler{
		service:                  service,
		log:                      log.With(logger.NewField("handler", "rider.eligibility.changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("rider.eligibility.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("rider.eligibility.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита
// offset'а: сообщение будет перечитано после ребаланса.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event eligibilityEvent
	if err := json.Unmarshal(message.Value, &event); err != nil || event.Eligible == nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("rider.eligibility.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("rider", event.RiderID),
		logger.NewField("workflow", event.Workflow),
		logger.NewField("eligible", *event.Eligible),
		logger.NewField("offset", message.Offset),
	)

	changed, err := h.service.Apply(ctx, entities.EligibilityChange{
		RiderID:  event.RiderID,
		Workflow: entities.WorkflowType(event.Workflow),
		Eligible: *event.Eligible,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("rider.eligibility.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrIllegalTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Info("rider.eligibility.changed skipped, workflow already scheduled or completed")

		case errors.Is(err, entities.ErrNotFound), errors.Is(err, entities.ErrValidation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("rider.eligibility.changed handler rejected event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("rider.eligibility.changed handler failed to apply event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("rider.eligibility.changed: processed", logger.NewField("changed", changed))
	sess.MarkMessage(message, "")
	return false
}
