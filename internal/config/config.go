package config

import (
	"fmt"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/ratelimit"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"      validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"      validate:"required"`
	Gin         GinConfig         `yaml:"gin"         validate:"required"`
	Storage     StorageConfig     `yaml:"storage"     validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"   validate:"required"`
	Reservation ReservationConfig `yaml:"reservation" validate:"required"`
	Slots       SlotsConfig       `yaml:"slots"       validate:"required"`
	Pricing     PricingConfig     `yaml:"pricing"     validate:"required"`
	Auth        AuthConfig        `yaml:"auth"        validate:"required"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Redis       RedisConfig       `yaml:"redis"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	Telegram    TelegramConfig    `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"tourbooker"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type ReservationConfig struct {
	HoldTTL     time.Duration `yaml:"hold_ttl"     env:"RESERVATION_HOLD_TTL"     env-default:"15m" validate:"gt=0"`
	ExpireBatch int           `yaml:"expire_batch" env:"RESERVATION_EXPIRE_BATCH" env-default:"100" validate:"min=1"`
}

type SlotsConfig struct {
	IntervalMinutes int `yaml:"interval_minutes" env:"SLOTS_INTERVAL_MINUTES" env-default:"60"  validate:"min=1,max=1440"`
	MaxRangeDays    int `yaml:"max_range_days"   env:"SLOTS_MAX_RANGE_DAYS"   env-default:"366" validate:"min=1"`
}

type PricingConfig struct {
	DefaultTier string `yaml:"default_tier" env:"PRICING_DEFAULT_TIER" env-default:"C" validate:"required,oneof=A B C"`
}

func (p PricingConfig) Tier() domain.Tier {
	return domain.Tier(p.DefaultTier)
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"                        validate:"required,min=16"`
	AdminRole string `yaml:"admin_role" env:"AUTH_ADMIN_ROLE" env-default:"admin"   validate:"required"`
}

type RateLimitConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"RATE_LIMIT_ENABLED"         env-default:"true"`
	Capacity       int           `yaml:"capacity"        env:"RATE_LIMIT_CAPACITY"        env-default:"10"        validate:"min=1"`
	RefillTokens   int           `yaml:"refill_tokens"   env:"RATE_LIMIT_REFILL_TOKENS"   env-default:"1"         validate:"min=1"`
	RefillInterval time.Duration `yaml:"refill_interval" env:"RATE_LIMIT_REFILL_INTERVAL" env-default:"1s"        validate:"gt=0"`
	TTL            time.Duration `yaml:"ttl"             env:"RATE_LIMIT_TTL"             env-default:"10m"       validate:"gt=0"`
	Prefix         string        `yaml:"prefix"          env:"RATE_LIMIT_PREFIX"          env-default:"tourbooker:rl"`
}

func (r RateLimitConfig) Limiter() ratelimit.Config {
	return ratelimit.Config{
		Capacity:       r.Capacity,
		RefillTokens:   r.RefillTokens,
		RefillInterval: r.RefillInterval,
		TTL:            r.TTL,
		Prefix:         r.Prefix,
	}
}

// RedisConfig with an empty Addr selects the in-process limiter.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// RabbitMQConfig with an empty URL disables event publishing.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"tourbooker.reservations"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
