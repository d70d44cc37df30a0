package service

import (
	"context"
	"encoding/json"

	"notepad-be/internal/dto"
	"notepad-be/internal/pkg/logger"
	"notepad-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventRelay forwards domain events to an external bus (NATS in production).
type EventRelay interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	relay      EventRelay
	logger     logger.ILogger
}

// NewConsumerService builds the NOTE_CHANGED consumer. relay may be nil, in
// which case events are only logged.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	relay EventRelay,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		relay:      relay,
		logger:     log,
	}
}

// Consume subscribes and processes messages in the background until ctx is
// cancelled or the subscriber is closed.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks. Relay failures are logged and dropped: change
// notifications are auxiliary and a Nack would redeliver in a hot loop while
// the bus is down.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.NoteChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "failed to unmarshal note change", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err,
		})
		return
	}

	eventType := events.TypeNoteUpdated
	if payload.Created {
		eventType = events.TypeNoteCreated
	}

	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id": payload.NoteId.String(),
			"user_id": payload.OwnerId,
			"title":   payload.Title,
		},
		OccurredAt: payload.UpdatedAt,
	}

	if cs.relay == nil {
		cs.logger.Debug("ConsumerService", "no relay configured, dropping event", map[string]interface{}{
			"type":    eventType,
			"note_id": payload.NoteId,
		})
		return
	}

	if err := cs.relay.Publish(ctx, evt); err != nil {
		cs.logger.Warn("ConsumerService", "failed to relay note event", map[string]interface{}{
			"type":    eventType,
			"note_id": payload.NoteId,
			"error":   err.Error(),
		})
		return
	}

	cs.logger.Debug("ConsumerService", "note event relayed", map[string]interface{}{
		"type":    eventType,
		"note_id": payload.NoteId,
	})
}
