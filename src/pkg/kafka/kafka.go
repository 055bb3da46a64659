package kafka

import (
	"fmt"
	"strings"
	"time"

	"bank-sampah-service/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	AppName       string
}

type saramaProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(cfg Cfg, logger log.Log) (Producer, error) {
	config := sarama.NewConfig()
	config.ClientID = cfg.AppName
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Retry.Backoff = 500 * time.Millisecond

	if cfg.KafkaUsername != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		config.Net.SASL.User = cfg.KafkaUsername
		config.Net.SASL.Password = cfg.KafkaPassword
		config.Net.TLS.Enable = true
	}

	producer, err := sarama.NewSyncProducer(strings.Split(cfg.KafkaUrl, ","), config)
	if err != nil {
		return nil, err
	}

	return &saramaProducer{producer: producer, log: logger}, nil
}

func (p *saramaProducer) Publish(topic string, key, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.log.Error("kafka", "failed to publish message", "Publish", err.Error())
		return err
	}
	p.log.Info("kafka", "message published", "Publish",
		fmt.Sprintf("topic=%s partition=%d offset=%d", topic, partition, offset))
	return nil
}

func (p *saramaProducer) Close() error {
	return p.producer.Close()
}
