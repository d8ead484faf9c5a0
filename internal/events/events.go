// Package events delivers ingestion outcomes to operators. Every event is
// logged; when a broker is configured it is also published to a durable
// queue.
package events

import (
	"context"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/models"
)

//go:generate mockgen -source=events.go -destination=../mock/events_mock.go -package=mock

// Sink receives ingestion events. Emit never fails; delivery problems are
// logged by the sink itself.
type Sink interface {
	Emit(ctx context.Context, event models.IngestEvent)
}

// NewSink returns the log sink, fanned out to an AMQP publisher when
// cfg.AMQPURL is set. The returned close function releases the broker
// connection.
func NewSink(cfg config.Events, log *logger.Logger) (Sink, func() error, error) {
	logSink := NewLogSink(log)
	if cfg.AMQPURL == "" {
		return logSink, func() error { return nil }, nil
	}

	pub, err := NewAMQPPublisher(cfg.AMQPURL, cfg.Queue, log)
	if err != nil {
		return nil, nil, err
	}

	return Multi{logSink, pub}, pub.Close, nil
}

// Multi emits to every sink in order.
type Multi []Sink

func (m Multi) Emit(ctx context.Context, event models.IngestEvent) {
	for _, s := range m {
		s.Emit(ctx, event)
	}
}
