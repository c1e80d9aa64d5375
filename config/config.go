package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Auth    AuthConfig    `yaml:"auth"`
	Geo     GeoConfig     `yaml:"geo"`
	Booking BookingConfig `yaml:"booking"`
	Log     LogConfig     `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// AuthConfig selects the OTP strategy and bounds code/token lifetimes.
// OTPStrategy is "local" (codes generated here, kept in Redis) or
// "provider" (fully delegated to the verification provider).
type AuthConfig struct {
	OTPStrategy   string `yaml:"otp_strategy"`
	OTPTTLSeconds int    `yaml:"otp_ttl_seconds"`
	JWTTTLHours   int    `yaml:"jwt_ttl_hours"`
	JWTSecret     string `yaml:"-"`

	Provider ProviderConfig `yaml:"-"`
}

// ProviderConfig carries the verification-provider credentials. These are
// secrets and come from the environment only.
type ProviderConfig struct {
	AccountSID string
	AuthToken  string
	VerifySID  string
	BaseURL    string
}

type GeoConfig struct {
	BaseURL string `yaml:"base_url"`
	Region  string `yaml:"region"`
	APIKey  string `yaml:"-"`
}

type BookingConfig struct {
	FollowupPhone string `yaml:"followup_phone"`
}

type LogConfig struct {
	File string `yaml:"file"`
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

	applyDefaults(&cfg)
	applySecrets(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "ghoomlo-db"
	}
	if cfg.Auth.OTPStrategy == "" {
		cfg.Auth.OTPStrategy = "local"
	}
	if cfg.Auth.OTPTTLSeconds == 0 {
		cfg.Auth.OTPTTLSeconds = 300
	}
	if cfg.Auth.JWTTTLHours == 0 {
		cfg.Auth.JWTTTLHours = 72
	}
	if cfg.Geo.Region == "" {
		cfg.Geo.Region = "IN"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "./logs/app.log"
	}
}

// applySecrets pulls credentials from the environment. They are never read
// from the YAML file.
func applySecrets(cfg *Config) {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}
	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", "change-me")
	cfg.Geo.APIKey = os.Getenv("GEO_API_KEY")
	cfg.Auth.Provider = ProviderConfig{
		AccountSID: os.Getenv("VERIFY_ACCOUNT_SID"),
		AuthToken:  os.Getenv("VERIFY_AUTH_TOKEN"),
		VerifySID:  os.Getenv("VERIFY_SERVICE_SID"),
		BaseURL:    getEnv("VERIFY_BASE_URL", "https://verify.twilio.com/v2"),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
