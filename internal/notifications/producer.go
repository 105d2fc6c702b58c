package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"festly/internal/booking"
	"festly/internal/shared/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Producer publishes confirmation events to Kafka
type Producer interface {
	PublishConfirmation(ctx context.Context, event *ConfirmationEvent) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates a sync producer with idempotent writes; a
// duplicate confirmation email is worse than a slightly slower publish
func NewKafkaProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.ConfirmationTopic,
	}, nil
}

func (p *kafkaProducer) PublishConfirmation(ctx context.Context, event *ConfirmationEvent) error {
	event.Status = EventStatusQueued

	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.ID.String())},
			{Key: []byte("confirmation_code"), Value: []byte(event.ConfirmationCode)},
			{Key: []byte("producer"), Value: []byte("festly-bookings")},
		},
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		event.MarkFailed(err)
		return fmt.Errorf("failed to publish confirmation event: %w", err)
	}

	log.Printf("Confirmation event published - topic: %s, partition: %d, offset: %d, code: %s",
		p.topic, partition, offset, event.ConfirmationCode)
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// notifierAdapter turns confirmed reservations into Kafka events. It
// implements the notifier contract the booking service consumes.
type notifierAdapter struct {
	producer Producer
}

// NewConfirmationNotifier adapts the Kafka producer to the booking
// workflow's notifier interface
func NewConfirmationNotifier(producer Producer) booking.ConfirmationNotifier {
	return &notifierAdapter{producer: producer}
}

func (a *notifierAdapter) NotifyReservationConfirmed(ctx context.Context, reservation *booking.Reservation) error {
	event := &ConfirmationEvent{
		ID:               uuid.New(),
		ConfirmationCode: reservation.ConfirmationCode,
		VenueID:          reservation.VenueID,
		GuestName:        reservation.GuestFirstName + " " + reservation.GuestLastName,
		GuestEmail:       reservation.GuestEmail,
		GuestCount:       reservation.GuestCount,
		StartTime:        reservation.StartTime,
		EndTime:          reservation.EndTime,
		Total:            reservation.Total,
		CreatedAt:        time.Now().UTC(),
	}

	return a.producer.PublishConfirmation(ctx, event)
}
