package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvPort            = "PORT"
	EnvDBDSN           = "DB_DSN"
	EnvMongoURI        = "MONGO_URI"
	EnvMongoDB         = "MONGO_DB"
	EnvWebhookURL      = "NOTIFY_WEBHOOK_URL"
	EnvKafkaBrokers    = "NOTIFY_KAFKA_BROKERS"
	EnvKafkaTopic      = "NOTIFY_KAFKA_TOPIC"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvCORSOrigin      = "CORS_ORIGIN"
)

const (
	DefaultPort            = "8080"
	DefaultMongoDB         = "dogwalking"
	DefaultKafkaTopic      = "dogwalking.notifications"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port string

	// Backend: DB_DSN gana sobre MONGO_URI; si no hay ninguno, memoria.
	DBDSN    string
	MongoURI string
	MongoDB  string

	WebhookURL   string
	KafkaBrokers []string
	KafkaTopic   string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	CORSOrigin string
}

// Load lee la configuración del entorno.
func Load() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	return Config{
		Port:            str(getenv, EnvPort, DefaultPort),
		DBDSN:           str(getenv, EnvDBDSN, ""),
		MongoURI:        str(getenv, EnvMongoURI, ""),
		MongoDB:         str(getenv, EnvMongoDB, DefaultMongoDB),
		WebhookURL:      str(getenv, EnvWebhookURL, ""),
		KafkaBrokers:    list(getenv, EnvKafkaBrokers),
		KafkaTopic:      str(getenv, EnvKafkaTopic, DefaultKafkaTopic),
		ReadTimeout:     duration(getenv, EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    duration(getenv, EnvWriteTimeout, DefaultWriteTimeout),
		ShutdownTimeout: duration(getenv, EnvShutdownTimeout, DefaultShutdownTimeout),
		CORSOrigin:      str(getenv, EnvCORSOrigin, ""),
	}
}

// Addr es la dirección de escucha (":8080").
func (c Config) Addr() string {
	return ":" + c.Port
}

func str(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

// duration acepta "5s" o un entero en segundos.
func duration(getenv func(string) string, key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func list(getenv func(string) string, key string) []string {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return nil
	}
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
