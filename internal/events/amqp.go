package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// amqpChannel is the subset of *amqp.Channel used for publishing.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes events as persistent JSON messages to a durable
// queue through the default exchange.
type AMQPPublisher struct {
	mu     sync.Mutex
	ch     amqpChannel
	conn   *amqp.Connection
	queue  string
	logger *logger.Logger
}

// NewAMQPPublisher dials url and declares queue.
func NewAMQPPublisher(url, queue string, log *logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("channel open: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("queue declare: %w", err)
	}

	log.Info().Str("func", "NewAMQPPublisher").Str("queue", queue).Msg("publishing ingest events")

	return &AMQPPublisher{ch: ch, conn: conn, queue: queue, logger: log}, nil
}

// Emit publishes event. Broker failures are logged and dropped: the event
// has already been logged by the log sink.
func (p *AMQPPublisher) Emit(ctx context.Context, event models.IngestEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Err(err).Str("func", "*AMQPPublisher.Emit").Msg("error encoding event")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.At,
		Type:         string(event.Kind),
		Body:         body,
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "*AMQPPublisher.Emit").Str("event", string(event.Kind)).Msg("error publishing event")
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
