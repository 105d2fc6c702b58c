package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"festly/internal/shared/config"

	"github.com/IBM/sarama"
)

// Consumer drains confirmation events and delivers guest emails
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	sender        EmailSender
	cancel        context.CancelFunc
}

func NewKafkaConsumer(cfg config.KafkaConfig, sender EmailSender) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		topics:        []string{cfg.ConfirmationTopic},
		sender:        sender,
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			log.Printf("Consumer group error: %v", err)
		}
	}()

	go func() {
		handler := &confirmationHandler{sender: c.sender}
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
					log.Printf("Error consuming confirmation events: %v", err)
					time.Sleep(time.Second)
				}
			}
		}
	}()

	log.Printf("Confirmation consumer started for topics: %v", c.topics)
	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type confirmationHandler struct {
	sender EmailSender
}

func (h *confirmationHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *confirmationHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *confirmationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.process(session.Context(), message); err != nil {
				log.Printf("Error processing confirmation event: %v", err)
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *confirmationHandler) process(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event ConfirmationEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal confirmation event: %w", err)
	}

	event.Status = EventStatusSending

	// Retry with exponential backoff, then give up; the reservation
	// itself is already committed
	var err error
	for attempt := 0; attempt <= 3; attempt++ {
		if err = h.sender.SendConfirmation(ctx, &event); err == nil {
			event.MarkSent()
			return nil
		}
		if attempt < 3 {
			select {
			case <-time.After(time.Second * time.Duration(1<<attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	event.MarkFailed(err)
	return fmt.Errorf("failed to deliver confirmation email after retries: %w", err)
}
