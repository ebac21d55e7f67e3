package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"foodbank/pkg/humanduration"
)

const (
	defaultTimezone         = "Europe/Stockholm"
	defaultInactivityPeriod = "1 year"
	defaultKafkaTopic       = "sms.provider.status"
	defaultSmsMaxAttempts   = 3
)

type (
	Tasks struct {
		SmsDispatchInterval   time.Duration
		NoShowScanInterval    time.Duration
		AnonymizationInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	App struct {
		LogLevel         string
		Location         *time.Location
		PublicBaseURL    string
		InactivityPeriod time.Duration // GDPR: срок неактивности до анонимизации
	}

	SmsGateway struct {
		BaseURL       string
		APIKey        string
		Sender        string
		TestMode      bool
		WebhookSecret string
		MaxAttempts   int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		SmsStatusChanged SmsStatusChanged
	}

	SmsStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		App        App
		Tasks      Tasks
		Server     HTTPServer
		Database   Database
		SmsGateway SmsGateway
		Kafka      Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker загружает конфиг kafka-воркера: ему не нужны HTTP сервер и SMS шлюз.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateKafka(cfg.Kafka); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	smsDispatchInterval, err := osGetEnvDuration("BACKGROUND_SMS_DISPATCH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	noShowScanInterval, err := osGetEnvDuration("BACKGROUND_NOSHOW_SCAN_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	anonymizationInterval, err := osGetEnvDuration("BACKGROUND_ANONYMIZATION_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	inactivityPeriod, err := humanduration.Parse(osGetEnvDefault("GDPR_INACTIVITY_PERIOD", defaultInactivityPeriod))
	if err != nil {
		return nil, fmt.Errorf("loading config: GDPR_INACTIVITY_PERIOD: %w", err)
	}

	location, err := time.LoadLocation(osGetEnvDefault("APP_TIMEZONE", defaultTimezone))
	if err != nil {
		return nil, fmt.Errorf("loading config: APP_TIMEZONE: %w", err)
	}

	smsTestMode, err := osGetBool("SMS_TEST_MODE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	smsMaxAttempts, err := osGetInt("SMS_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if smsMaxAttempts == 0 {
		smsMaxAttempts = defaultSmsMaxAttempts
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	smsStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_SMS_STATUS_CHANGED_PROCESS_TIMEOUT")
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

	return &Config{
		App: App{
			LogLevel:         os.Getenv("LOG_LEVEL"),
			Location:         location,
			PublicBaseURL:    os.Getenv("PUBLIC_BASE_URL"),
			InactivityPeriod: inactivityPeriod,
		},
		Tasks: Tasks{
			SmsDispatchInterval:   smsDispatchInterval,
			NoShowScanInterval:    noShowScanInterval,
			AnonymizationInterval: anonymizationInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		SmsGateway: SmsGateway{
			BaseURL:       os.Getenv("SMS_GATEWAY_URL"),
			APIKey:        os.Getenv("SMS_GATEWAY_API_KEY"),
			Sender:        os.Getenv("SMS_SENDER"),
			TestMode:      smsTestMode,
			WebhookSecret: os.Getenv("SMS_WEBHOOK_SECRET"),
			MaxAttempts:   smsMaxAttempts,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           osGetEnvDefault("KAFKA_TOPIC", defaultKafkaTopic),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				SmsStatusChanged: SmsStatusChanged{
					ProcessTimeout: smsStatusChangedTimeout,
				},
			},
		},
	}, nil
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

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.App.PublicBaseURL == "" {
		return errors.New("PUBLIC_BASE_URL is required")
	}

	if cfg.Tasks.SmsDispatchInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SMS_DISPATCH_INTERVAL is required")
	}
	if cfg.Tasks.NoShowScanInterval == time.Duration(0) {
		return errors.New("BACKGROUND_NOSHOW_SCAN_INTERVAL is required")
	}
	if cfg.Tasks.AnonymizationInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ANONYMIZATION_INTERVAL is required")
	}

	if cfg.SmsGateway.BaseURL == "" {
		return errors.New("SMS_GATEWAY_URL is required")
	}
	if cfg.SmsGateway.APIKey == "" {
		return errors.New("SMS_GATEWAY_API_KEY is required")
	}
	if cfg.SmsGateway.Sender == "" {
		return errors.New("SMS_SENDER is required")
	}
	if cfg.SmsGateway.WebhookSecret == "" {
		return errors.New("SMS_WEBHOOK_SECRET is required")
	}
	if cfg.SmsGateway.MaxAttempts < 1 {
		return errors.New("SMS_MAX_ATTEMPTS must be positive")
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(k Kafka) error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if k.Handlers.SmsStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_SMS_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetEnvDefault(s, fallback string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return fallback
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
