package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Producer публикует события о записанных обменах в Kafka
type Producer struct {
	producer sarama.SyncProducer
	cfg      *Config
	log      *slog.Logger
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		config.Net.SASL.User = cfg.SASLUsername
		config.Net.SASL.Password = cfg.SASLPassword
		if cfg.SecurityProtocol == "SASL_SSL" {
			config.Net.TLS.Enable = true
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return &Producer{
		producer: producer,
		cfg:      cfg,
		log:      log,
	}, nil
}

// SendExchangeRecorded публикует событие о записанном обмене.
// Ключ - id входящего сообщения, чтобы повторы схлопывались при компакции.
func (p *Producer) SendExchangeRecorded(ctx context.Context, messageID string, handle string, threadID uuid.UUID, chunkCount int) error {
	valueData := map[string]interface{}{
		"handle":      handle,
		"thread_id":   threadID.String(),
		"chunk_count": chunkCount,
	}
	valueBytes, err := json.Marshal(valueData)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.cfg.Topic,
		Key:   sarama.StringEncoder(messageID),
		Value: sarama.ByteEncoder(valueBytes),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event"),
				Value: []byte("exchange.recorded"),
			},
			{
				Key:   []byte("message_id"),
				Value: []byte(messageID),
			},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.cfg.Topic,
			"key", messageID,
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w", p.cfg.Topic, messageID, err)
	}

	p.log.Debug("exchange event sent",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	return p.producer.Close()
}
