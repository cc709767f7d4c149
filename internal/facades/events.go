package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/SidorenkoTatiana/foodgram-st/internal/logger"
	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventsKafkaFacade publishes domain events to a Kafka topic.
type EventsKafkaFacade struct {
	writer KafkaWriter
}

// NewEventsKafkaFacade creates a facade; a nil writer turns publishing off.
func NewEventsKafkaFacade(writer KafkaWriter) *EventsKafkaFacade {
	return &EventsKafkaFacade{writer: writer}
}

// NewKafkaWriter builds a writer for topic, or nil when no brokers are configured.
// Events are written one at a time, so each write is flushed immediately.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
	}
}

// Publish sends the event keyed by its id. Failures are logged, not returned.
func (f *EventsKafkaFacade) Publish(ctx context.Context, event models.Event) {
	if f.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
}

// Close releases the underlying writer.
func (f *EventsKafkaFacade) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
