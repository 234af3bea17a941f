// Package mq connects the service to Kafka: session events go out,
// finished call records come in.
package mq

import (
	"context"
	"time"

	"vidcall_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// messageReader is the subset of *kafka.Reader used here.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaClient owns the producer and the call-record consumer.
type KafkaClient struct {
	Producer messageWriter
	Consumer messageReader
	cfg      config.KafkaConfig
}

// NewKafkaClient builds the writer and reader from cfg. The writer has no
// fixed topic; each message names its own.
func NewKafkaClient(cfg config.KafkaConfig) *KafkaClient {
	return &KafkaClient{
		Producer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.HostPort),
			Balancer:               &kafka.Hash{},
			WriteTimeout:           cfg.Timeout * time.Second,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: false,
		},
		Consumer: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{cfg.HostPort},
			Topic:          cfg.CallTopic,
			GroupID:        cfg.GroupID,
			CommitInterval: cfg.Timeout * time.Second,
			StartOffset:    kafka.LastOffset,
		}),
		cfg: cfg,
	}
}

// CreateTopics creates the three topics on the broker, ignoring ones that exist.
func (k *KafkaClient) CreateTopics() error {
	conn, err := kafka.Dial("tcp", k.cfg.HostPort)
	if err != nil {
		return err
	}
	defer conn.Close()

	partitions := k.cfg.Partition
	if partitions <= 0 {
		partitions = 1
	}
	topics := make([]kafka.TopicConfig, 0, 3)
	for _, t := range []string{k.cfg.LoginTopic, k.cfg.LogoutTopic, k.cfg.CallTopic} {
		if t == "" {
			continue
		}
		topics = append(topics, kafka.TopicConfig{Topic: t, NumPartitions: partitions, ReplicationFactor: 1})
	}
	return conn.CreateTopics(topics...)
}

// Close releases both ends.
func (k *KafkaClient) Close() {
	if err := k.Producer.Close(); err != nil {
		zap.L().Error("close kafka producer", zap.Error(err))
	}
	if err := k.Consumer.Close(); err != nil {
		zap.L().Error("close kafka consumer", zap.Error(err))
	}
}
