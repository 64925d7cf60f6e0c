package notifications

import (
	"context"
	"encoding/json"
	"time"

	"cinebox/internal/shared/config"
	"cinebox/pkg/logger"

	"github.com/IBM/sarama"
)

// BookingConfirmedEvent is published after a booking commits
type BookingConfirmedEvent struct {
	BookingRef string    `json:"booking_ref"`
	ShowID     int64     `json:"show_id"`
	Seats      int       `json:"seats"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer publishes booking events to Kafka. A nil Producer is valid
// and drops every publish, so the service runs without a broker.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewProducer connects the sync producer. Returns nil without error
// when Kafka is disabled in config.
func NewProducer(cfg config.KafkaConfig, log *logger.Logger) (*Producer, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &Producer{producer: producer, topic: cfg.BookingTopic, log: log}, nil
}

// PublishBookingConfirmed sends the event. Best-effort: failures are
// logged, never returned to the booking path.
func (p *Producer) PublishBookingConfirmed(ctx context.Context, bookingRef string, showID int64, seats int) {
	if p == nil || p.producer == nil {
		return
	}

	event := BookingConfirmedEvent{
		BookingRef: bookingRef,
		ShowID:     showID,
		Seats:      seats,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.ErrorWithContext(ctx, "marshal booking event", err, nil)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(bookingRef),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.log.ErrorWithContext(ctx, "publish booking event", err, map[string]interface{}{
			"booking_ref": bookingRef,
		})
	}
}

// Close shuts the producer down
func (p *Producer) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
