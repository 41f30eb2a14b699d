package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/adforge/internal/models"
)

// Topic downstream campaign tooling consumes generation records from.
const AdRecordsTopic = "ads.generated"

var producer *kafka.Producer

func InitKafkaPublisher() error {
	slog.Info("[Publisher] Initializing Kafka Producer...")

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		broker = "localhost:29092"
	}

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":                     broker,
		"security.protocol":                     "PLAINTEXT",
		"api.version.request":                   "true",
		"enable.idempotence":                    true,
		"acks":                                  "all",
		"max.in.flight.requests.per.connection": 1,
		"transactional.id":                      "adforge-publisher-1",
	})
	if err != nil {
		return fmt.Errorf("[Publisher] Failed to create producer: %w", err)
	}

	if err := p.InitTransactions(context.Background()); err != nil {
		return fmt.Errorf("[Publisher] Failed to init transactions: %w", err)
	}

	producer = p
	slog.Info("[Publisher] Kafka Producer initialized successfully")
	return nil
}

func CloseKafkaPublisher() {
	slog.Info("[Publisher] Shutting down Kafka producer...")
	if producer != nil {
		slog.Info("[Publisher] Flushing Kafka producer before shutdown...")
		if remaining := producer.Flush(5000); remaining > 0 {
			slog.Warn("[Publisher] Not all messages were delivered before shutdown",
				slog.Int("remaining", remaining))
		}
		producer.Close()
		slog.Info("[Publisher] Kafka producer shut down")
	}
}

// PublishAdRecords sends a batch of generation records in one transaction,
// keyed by record ID.
func PublishAdRecords(records []models.AdRecord) error {
	if len(records) == 0 {
		return nil
	}
	if producer == nil {
		return fmt.Errorf("[Publisher] Kafka producer is not initialized")
	}

	if err := producer.BeginTransaction(); err != nil {
		return fmt.Errorf("[Publisher] failed to begin transaction: %v", err)
	}

	topic := AdRecordsTopic
	for _, record := range records {
		jsonData, err := json.Marshal(record)
		if err != nil {
			abortErr := producer.AbortTransaction(context.Background())
			if abortErr != nil {
				return fmt.Errorf("[Publisher] failed to abort transaction after marshal error: %v", abortErr)
			}
			return err
		}

		msg := &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(record.ID),
			Value:          jsonData,
		}

		for i := 0; i < 3; i++ {
			err = producer.Produce(msg, nil)
			if err == nil {
				break
			}
			slog.Warn("[Publisher] Failed to produce message, retrying...",
				slog.Int("attempt", i+1))
		}
		if err != nil {
			abortErr := producer.AbortTransaction(context.Background())
			if abortErr != nil {
				return fmt.Errorf("[Publisher] failed to abort transaction after produce error: %v", abortErr)
			}
			return err
		}
	}

	var commitErr error
	for i := 0; i < 3; i++ {
		commitErr = producer.CommitTransaction(context.Background())
		if commitErr == nil {
			break
		}
		slog.Warn("[Publisher] Failed to commit transaction, retrying...",
			slog.Int("attempt", i+1))
	}
	if commitErr != nil {
		return fmt.Errorf("[Publisher] failed to commit transaction after 3 retries: %w", commitErr)
	}

	slog.Info("[Publisher] Published ad records transactionally",
		slog.String("topic", topic),
		slog.Int("count", len(records)))

	return nil
}
