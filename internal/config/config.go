package config

import (
	"os"
	"strings"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	DatabaseURL   string
	KafkaBrokers  []string
	KafkaTopic    string
	KafkaClientID string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("USER_API_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "actions"
	}

	clientID := os.Getenv("KAFKA_CLIENT_ID")
	if clientID == "" {
		clientID = "user-actions-backend"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Config{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		KafkaBrokers:  brokers,
		KafkaTopic:    topic,
		KafkaClientID: clientID,
	}
}
