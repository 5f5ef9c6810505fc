package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rafabene/pessoas-backend/internal/domain/ports"
)

// publishTimeout limita quanto uma requisição espera pelo broker
const publishTimeout = 3 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica eventos de pessoa num tópico Kafka, com a pessoa como chave
type KafkaPublisher struct {
	writer  messageWriter
	topic   string
	timeout time.Duration
	logger  ports.Logger
}

// NewKafkaPublisher cria o publicador para os brokers e tópico informados
func NewKafkaPublisher(brokers []string, topic string, logger ports.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers must be specified")
	}
	if topic == "" {
		return nil, errors.New("kafka topic must be specified")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           2 * time.Second,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{writer: writer, topic: topic, timeout: publishTimeout, logger: logger}, nil
}

// Publish serializa o evento em JSON e o envia ao tópico. Um broker inacessível
// devolve erro depois de p.timeout em vez de segurar a requisição.
func (p *KafkaPublisher) Publish(ctx context.Context, event ports.PessoaEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal pessoa event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.PessoaID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	timeout := p.timeout
	if timeout <= 0 {
		timeout = publishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	p.logger.Debug("pessoa event published", "topic", p.topic, "type", event.Type, "id", event.PessoaID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
