package config

import (
	"bank-sampah-service/src/pkg/kafka"
	"bank-sampah-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaProducer(config *viper.Viper, log log.Log) kafka.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}

	cfg := kafka.Cfg{
		KafkaUrl:      config.GetString("kafka.bootstrap.servers"),
		KafkaUsername: config.GetString("kafka.username"),
		KafkaPassword: config.GetString("kafka.password"),
		AppName:       config.GetString("app.name"),
	}
	kafkaProducer, err := kafka.NewProducer(cfg, log)
	if err != nil {
		panic(err)
	}

	return kafkaProducer
}
