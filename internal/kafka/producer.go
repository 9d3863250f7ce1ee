package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

type ProducerInterface interface {
	PublishObjectAsync(key []byte, obj interface{})
}

type Producer struct {
	topic  string
	client *kgo.Client
}

func NewProducer(brokers []string, topic string) (*Producer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Printf("Kafka producer initialized for topic: %s", topic)
	return &Producer{topic: topic, client: client}, nil
}

func (p *Producer) Topic() string {
	return p.topic
}

func (p *Producer) Close() {
	p.client.Close()
}

func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	msg := &kgo.Record{
		Topic: p.topic,
		Key:   key,
		Value: value,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.client.ProduceSync(ctx, msg).FirstErr(); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.topic, err)
	}

	log.Printf("Published to %s: key=%s", p.topic, string(key))
	return nil
}

// PublishObjectAsync marshals obj and hands the record to the client buffer.
// Delivery errors are logged only; Flush waits for buffered records.
func (p *Producer) PublishObjectAsync(key []byte, obj interface{}) {
	value, err := json.Marshal(obj)
	if err != nil {
		log.Printf("Failed to marshal object for Kafka: %v", err)
		return
	}

	msg := &kgo.Record{
		Topic: p.topic,
		Key:   key,
		Value: value,
	}
	p.client.Produce(context.Background(), msg, func(r *kgo.Record, err error) {
		if err != nil {
			log.Printf("Kafka async publish error (key=%s): %v", string(r.Key), err)
			return
		}
		log.Printf("Published to %s: key=%s", r.Topic, string(r.Key))
	})
}

// Flush blocks until every buffered record is delivered or ctx is done.
func (p *Producer) Flush(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return fmt.Errorf("kafka flush %s: %w", p.topic, err)
	}
	return nil
}
