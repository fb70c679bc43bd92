package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "SAGA"

type Config struct {
	ServiceName string    `mapstructure:"service_name"`
	Env         string    `mapstructure:"env"`
	Port        string    `mapstructure:"port"`
	LogLevel    string    `mapstructure:"log_level"`
	Database    Database  `mapstructure:"database"`
	Storage     Storage   `mapstructure:"storage"`
	Bus         Bus       `mapstructure:"bus"`
	Lock        Lock      `mapstructure:"lock"`
	AWS         AWS       `mapstructure:"aws"`
	Telemetry   Telemetry `mapstructure:"telemetry"`
}

type Database struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Storage selects the participant store: postgres or memory
type Storage struct {
	Driver string `mapstructure:"driver"`
}

// Bus selects the transport: sns (SNS fan-out to an SQS queue), kafka or memory
type Bus struct {
	Driver       string   `mapstructure:"driver"`
	SNSTopicArn  string   `mapstructure:"sns_topic_arn"`
	SQSQueueURL  string   `mapstructure:"sqs_queue_url"`
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaGroupID string   `mapstructure:"kafka_group_id"`
	Workers      int      `mapstructure:"workers"`
}

// Lock selects the idempotency key locker: memory or redis
type Lock struct {
	Driver    string        `mapstructure:"driver"`
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type AWS struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	EndpointSNS     string `mapstructure:"endpoint_sns"`
	EndpointSQS     string `mapstructure:"endpoint_sqs"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
	DriverSNS      = "sns"
	DriverKafka    = "kafka"
	DriverRedis    = "redis"
)

// ReadConfig loads <ENVIRONMENT>.json from the given directories, applies SAGA_* overrides
// and the service defaults. A missing config file is not an error.
func ReadConfig(serviceName, defaultPort string, configPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(getConfigName())
	v.SetConfigType("json")
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, serviceName, defaultPort)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper, serviceName, defaultPort string) {
	v.SetDefault("service_name", serviceName)
	v.SetDefault("env", getEnv("ENV", "local"))
	v.SetDefault("port", getEnv("PORT", defaultPort))
	v.SetDefault("log_level", "info")

	v.SetDefault("database.url", os.Getenv("DATABASE_URL"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", strings.ReplaceAll(serviceName, "-", "_"))
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("storage.driver", DriverMemory)

	v.SetDefault("bus.driver", DriverMemory)
	v.SetDefault("bus.sns_topic_arn", getEnv("SNS_TOPIC_ARN", "arn:aws:sns:us-east-1:000000000000:saga-events"))
	v.SetDefault("bus.sqs_queue_url", getEnv("SQS_QUEUE_URL", "http://localhost:4566/000000000000/"+serviceName))
	v.SetDefault("bus.kafka_brokers", []string{"localhost:9092"})
	v.SetDefault("bus.kafka_group_id", serviceName)
	v.SetDefault("bus.workers", 4)

	v.SetDefault("lock.driver", DriverMemory)
	v.SetDefault("lock.redis_addr", "localhost:6379")
	v.SetDefault("lock.ttl", 30*time.Second)

	v.SetDefault("aws.access_key_id", getEnv("AWS_ACCESS_KEY_ID", "test"))
	v.SetDefault("aws.secret_access_key", getEnv("AWS_SECRET_ACCESS_KEY", "test"))
	v.SetDefault("aws.region", getEnv("AWS_DEFAULT_REGION", "us-east-1"))
	v.SetDefault("aws.endpoint_sns", getEnv("AWS_ENDPOINT_URL_SNS", "http://localhost:4566"))
	v.SetDefault("aws.endpoint_sqs", getEnv("AWS_ENDPOINT_URL_SQS", "http://localhost:4566"))

	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.otlp_endpoint", "")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate rejects unknown drivers
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Bus.Driver {
	case DriverSNS, DriverKafka, DriverMemory:
	default:
		return errors.Errorf("unknown bus driver %q", c.Bus.Driver)
	}
	switch c.Lock.Driver {
	case DriverRedis, DriverMemory:
	default:
		return errors.Errorf("unknown lock driver %q", c.Lock.Driver)
	}
	if c.Bus.Workers < 1 {
		return errors.Errorf("bus workers must be positive, got %d", c.Bus.Workers)
	}
	return nil
}

// GetDatabaseURL constructs database URL from config
func (c *Config) GetDatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}
