package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lamkn06/delivery-ops/internal/logx"
	"github.com/lamkn06/delivery-ops/internal/service/delivery"
)

// StatusProducer publishes delivery status events to Kafka keyed by
// tracking code, so all events of one delivery land on one partition.
type StatusProducer struct {
	producer  sarama.SyncProducer
	topic     string
	published prometheus.Counter
	logger    logx.Logger
}

// NewStatusProducer creates a new StatusProducer. Returns nil when Kafka
// is not configured; a nil producer is safe to use and Close.
func NewStatusProducer(brokers []string, topic string, published prometheus.Counter, logger logx.Logger) (*StatusProducer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second

	prod, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &StatusProducer{
		producer:  prod,
		topic:     topic,
		published: published,
		logger:    logger,
	}, nil
}

// PublishStatusChanged publishes one status event.
func (p *StatusProducer) PublishStatusChanged(_ context.Context, ev delivery.StatusEvent) error {
	if p == nil {
		return nil
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.TrackingCode),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send status event: %w", err)
	}

	if p.published != nil {
		p.published.Inc()
	}
	p.logger.Debug("status event published",
		logx.String("topic", p.topic),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

func (p *StatusProducer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
