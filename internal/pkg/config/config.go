package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPostgresMaxConns     = 10
	DefaultBulkWriteConcurrency = 4
	DefaultBusinessUTCOffset    = 3 * time.Hour
	DefaultLogLevel             = "info"

	// Помимо параллельных записей райдеров пулу нужны соединение внешней
	// транзакции батча и одно на списание экипировки.
	bulkReservedConns = 2
)

type (
	Tasks struct {
		StockProjectionRebuildInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // емкость бакета на bulk маршрутах
		RateLimiterBurst int           // пополнение токенов в секунду
		PprofEnabled     bool
		PprofPort        string
	}

	Logging struct {
		Level string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int
	}

	Redis struct {
		Addr               string
		StockProjectionTTL time.Duration
	}

	Bulk struct {
		RiderWriteTimeout time.Duration
		WriteConcurrency  int
	}

	Business struct {
		UTCOffset time.Duration
	}

	Kafka struct {
		PortHealthcheck   string
		Brokers           string
		NotificationTopic string
		EligibilityTopic  string
		ConsumerGroup     string
		Sarama            Sarama
		Handlers          KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		EligibilityChanged EligibilityChanged
	}

	EligibilityChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Logging  Logging
		Database Database
		Redis    Redis
		Bulk     Bulk
		Business Business
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	rebuildInterval, err := osGetEnvDuration("BACKGROUND_STOCK_PROJECTION_REBUILD_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	eligibilityChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ELIGIBILITY_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	projectionTTL, err := osGetEnvDuration("STOCK_PROJECTION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	riderWriteTimeout, err := osGetEnvDuration("BULK_RIDER_WRITE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	writeConcurrency, err := osGetInt("BULK_WRITE_CONCURRENCY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	utcOffset, err := osGetEnvDuration("BUSINESS_UTC_OFFSET")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			StockProjectionRebuildInterval: rebuildInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Logging: Logging{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: maxConns,
		},
		Redis: Redis{
			Addr:               os.Getenv("REDIS_ADDR"),
			StockProjectionTTL: projectionTTL,
		},
		Bulk: Bulk{
			RiderWriteTimeout: riderWriteTimeout,
			WriteConcurrency:  writeConcurrency,
		},
		Business: Business{
			UTCOffset: utcOffset,
		},
		Kafka: Kafka{
			Brokers:           os.Getenv("KAFKA_BROKERS"),
			NotificationTopic: os.Getenv("KAFKA_NOTIFICATION_TOPIC"),
			EligibilityTopic:  os.Getenv("KAFKA_ELIGIBILITY_TOPIC"),
			ConsumerGroup:     os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:   os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				EligibilityChanged: EligibilityChanged{
					ProcessTimeout: eligibilityChangedTimeout,
				},
			},
		},
	}, nil
}

// applyDefaults: незаданные ключи с безопасным значением по умолчанию.
// BUSINESS_UTC_OFFSET=0h задать нельзя, пустое значение означает UTC+3.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultPostgresMaxConns
	}
	if cfg.Bulk.WriteConcurrency == 0 {
		cfg.Bulk.WriteConcurrency = DefaultBulkWriteConcurrency
	}
	if cfg.Business.UTCOffset == 0 {
		cfg.Business.UTCOffset = DefaultBusinessUTCOffset
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if cfg.Redis.StockProjectionTTL == time.Duration(0) {
		return errors.New("STOCK_PROJECTION_TTL is required")
	}

	if cfg.Tasks.StockProjectionRebuildInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STOCK_PROJECTION_REBUILD_INTERVAL is required")
	}

	if cfg.Bulk.RiderWriteTimeout == time.Duration(0) {
		return errors.New("BULK_RIDER_WRITE_TIMEOUT is required")
	}
	if cfg.Bulk.WriteConcurrency < 0 {
		return errors.New("BULK_WRITE_CONCURRENCY must be positive")
	}
	if cfg.Database.MaxConns < cfg.Bulk.WriteConcurrency+bulkReservedConns {
		return fmt.Errorf("POSTGRES_MAX_CONNS=%d must be at least BULK_WRITE_CONCURRENCY+%d=%d",
			cfg.Database.MaxConns, bulkReservedConns, cfg.Bulk.WriteConcurrency+bulkReservedConns)
	}

	if cfg.Business.UTCOffset < -12*time.Hour || cfg.Business.UTCOffset > 14*time.Hour {
		return fmt.Errorf("BUSINESS_UTC_OFFSET=%s is out of range", cfg.Business.UTCOffset)
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.NotificationTopic == "" {
		return errors.New("KAFKA_NOTIFICATION_TOPIC is required")
	}
	if cfg.Kafka.EligibilityTopic == "" {
		return errors.New("KAFKA_ELIGIBILITY_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.EligibilityChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ELIGIBILITY_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
