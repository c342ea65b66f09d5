package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	brokers []string
	topics  []string
	writer  *kafka.Writer
}

// NewProducer writes every event to each of topics, typically the order
// events topic and the notifications topic.
func NewProducer(brokers []string, topics ...string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		topics:  topics,
		writer:  writer,
	}
}

// PublishEvent sends payload keyed by key to every configured topic.
func (p *Producer) PublishEvent(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	messages := buildMessages(p.topics, key, data, time.Now())
	if len(messages) == 0 {
		return errors.New("no topics configured")
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	log.Printf("Published event - Topics: %v, Key: %s", p.topics, key)
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and reads its partitions.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return errors.New("no brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	log.Printf("Connected to Kafka, %d partitions visible", len(partitions))
	return nil
}

func buildMessages(topics []string, key string, value []byte, at time.Time) []kafka.Message {
	messages := make([]kafka.Message, 0, len(topics))
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		messages = append(messages, kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: value,
			Time:  at,
		})
	}
	return messages
}
