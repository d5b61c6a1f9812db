// Package event publishes platform notifications (business signups, domain
// activations) to kafka for downstream consumers. Publishing is best effort:
// a broker failure is logged, never surfaced to the request.
package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/storefront-services/storefront-backend/pkg/config"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog/log"
	"github.com/xdg-go/scram"
)

const (
	BusinessCreated = "business.created"
	DomainActivated = "domain.activated"
)

type BusinessPayload struct {
	BusinessUUID string `json:"business_uuid"`
	Subdomain    string `json:"subdomain"`
}

type DomainPayload struct {
	BusinessUUID string `json:"business_uuid"`
	Domain       string `json:"domain"`
}

type notification struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

type Producer interface {
	SendNotification(eventType string, payload interface{})
	Close() error
}

type saramaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer builds a kafka producer from configuration. With no brokers
// configured it returns a producer that drops everything.
func NewProducer(cfg *config.Kafka) (Producer, error) {
	if len(cfg.Brokers) == 0 {
		log.Warn().Msg("No kafka brokers configured, notifications are disabled")
		return NewNoOpProducer(), nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true
	if err := configureSasl(saramaConfig, cfg.Sasl); err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, err
	}
	return &saramaProducer{producer: producer, topic: cfg.Topic}, nil
}

func configureSasl(saramaConfig *sarama.Config, sasl config.KafkaSasl) error {
	if sasl.Username == "" {
		return nil
	}
	saramaConfig.Net.SASL.Enable = true
	saramaConfig.Net.SASL.User = sasl.Username
	saramaConfig.Net.SASL.Password = sasl.Password

	switch sasl.Mechanism {
	case "", "PLAIN":
		saramaConfig.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	case "SCRAM-SHA-256":
		saramaConfig.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		saramaConfig.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &SCRAMClient{HashGeneratorFcn: scram.SHA256}
		}
	case "SCRAM-SHA-512":
		saramaConfig.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
		saramaConfig.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &SCRAMClient{HashGeneratorFcn: scram.SHA512}
		}
	default:
		return fmt.Errorf("unsupported sasl mechanism %v", sasl.Mechanism)
	}
	return nil
}

func (p *saramaProducer) SendNotification(eventType string, payload interface{}) {
	value, err := json.Marshal(notification{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		log.Error().Err(err).Msgf("Could not marshal %v notification", eventType)
		return
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(eventType),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		log.Error().Err(err).Msgf("Could not send %v notification", eventType)
	}
}

func (p *saramaProducer) Close() error {
	return p.producer.Close()
}
