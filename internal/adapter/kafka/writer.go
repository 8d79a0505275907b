package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-advisory-service/internal/config"
	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes rendered reports to the advisory topic.
// It implements dashboard.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured advisory topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAdvisoryTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish writes one report. Reports for the same city and observation share
// a key, so they land on the same partition.
func (w *Writer) Publish(ctx context.Context, report domain.Report) error {
	msg, err := serializeToMessage(report)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish report %s: %w", report.ID, err)
	}
	w.logger.Debug("report published", "id", report.ID, "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Report into a Kafka message. Animation
// documents are dropped from the payload; consumers get the URLs.
func serializeToMessage(report domain.Report) (kafkago.Message, error) {
	report.WeatherAnimation = nil
	report.PlantAnimation = nil
	data, err := json.Marshal(report)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize report: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(report.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "condition", Value: []byte(report.Condition)},
			{Key: "alert_count", Value: []byte(strconv.Itoa(len(report.Alerts)))},
			{Key: "generated_at", Value: []byte(report.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
