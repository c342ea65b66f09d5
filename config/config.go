package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix scopes environment overrides, e.g. AIRPORT_PAYMENTS_STRIPE_SECRET_KEY.
const envPrefix = "AIRPORT"

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Booking   BookingConfig   `yaml:"booking"`
	Payments  PaymentsConfig  `yaml:"payments"`
	Worker    WorkerConfig    `yaml:"worker"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type HTTPConfig struct {
	Address string `yaml:"address" envconfig:"ADDRESS"`
}

type GRPCConfig struct {
	Address string `yaml:"address" envconfig:"ADDRESS"`
}

type DatabaseConfig struct {
	Host           string `yaml:"host" envconfig:"HOST"`
	Port           int    `yaml:"port" envconfig:"PORT"`
	User           string `yaml:"user" envconfig:"USER"`
	Password       string `yaml:"password" envconfig:"PASSWORD"`
	Name           string `yaml:"name" envconfig:"NAME"`
	SSLMode        string `yaml:"ssl_mode" envconfig:"SSL_MODE"`
	MigrateOnStart bool   `yaml:"migrate_on_start" envconfig:"MIGRATE_ON_START"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr" envconfig:"ADDR"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	DB       int    `yaml:"db" envconfig:"DB"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" envconfig:"BROKERS"`
	OrderEventsTopic   string   `yaml:"order_events_topic" envconfig:"ORDER_EVENTS_TOPIC"`
	NotificationsTopic string   `yaml:"notifications_topic" envconfig:"NOTIFICATIONS_TOPIC"`
	GroupID            string   `yaml:"group_id" envconfig:"GROUP_ID"`
}

type BookingConfig struct {
	SeatHoldSeconds       int `yaml:"seat_hold_seconds" envconfig:"SEAT_HOLD_SECONDS"`
	ReferenceCacheTTLSecs int `yaml:"reference_cache_ttl_seconds" envconfig:"REFERENCE_CACHE_TTL_SECONDS"`
}

type PaymentsConfig struct {
	// Provider is "stripe" or "midtrans".
	Provider           string `yaml:"provider" envconfig:"PROVIDER"`
	Currency           string `yaml:"currency" envconfig:"CURRENCY"`
	UnitRate           int64  `yaml:"unit_rate" envconfig:"UNIT_RATE"`
	SuccessURL         string `yaml:"success_url" envconfig:"SUCCESS_URL"`
	CancelURL          string `yaml:"cancel_url" envconfig:"CANCEL_URL"`
	StripeSecretKey    string `yaml:"stripe_secret_key" envconfig:"STRIPE_SECRET_KEY"`
	MidtransServerKey  string `yaml:"midtrans_server_key" envconfig:"MIDTRANS_SERVER_KEY"`
	MidtransProduction bool   `yaml:"midtrans_production" envconfig:"MIDTRANS_PRODUCTION"`
}

type WorkerConfig struct {
	ReconcileSweepMinutes int `yaml:"reconcile_sweep_minutes" envconfig:"RECONCILE_SWEEP_MINUTES"`
	ReconcileBatch        int `yaml:"reconcile_batch" envconfig:"RECONCILE_BATCH"`
}

type TelemetryConfig struct {
	ServiceName  string `yaml:"service_name" envconfig:"SERVICE_NAME"`
	OTLPEndpoint string `yaml:"otlp_endpoint" envconfig:"OTLP_ENDPOINT"`
	Environment  string `yaml:"environment" envconfig:"ENVIRONMENT"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Booking.SeatHoldSeconds <= 0 {
		c.Booking.SeatHoldSeconds = 30
	}
	if c.Booking.ReferenceCacheTTLSecs <= 0 {
		c.Booking.ReferenceCacheTTLSecs = 60
	}
	if c.Payments.Provider == "" {
		c.Payments.Provider = "stripe"
	}
	if c.Payments.Currency == "" {
		c.Payments.Currency = "usd"
	}
	if c.Payments.UnitRate <= 0 {
		c.Payments.UnitRate = 10
	}
	if c.Worker.ReconcileSweepMinutes <= 0 {
		c.Worker.ReconcileSweepMinutes = 5
	}
	if c.Worker.ReconcileBatch <= 0 {
		c.Worker.ReconcileBatch = 100
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "airport"
	}
}
