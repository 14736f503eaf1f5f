package services

import (
	"fmt"

	"github.com/IBM/sarama"
)

const kafkaMaxRetries = 5

// InitKafka creates a synchronous Kafka producer.
func InitKafka(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = kafkaMaxRetries

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Kafka producer: %w", err)
	}

	return producer, nil
}
