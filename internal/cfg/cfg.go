package cfg

import (
	"time"

	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/caarlos0/env/v11"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http    *HTTPConfig
	Storage *StorageCfg
	Redis   *RedisCfg
}

type HTTPConfig struct {
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"KEEP_ALIVE" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// StorageCfg описывает внешние параметры, по которым выбирается реализация хранилища.
type StorageCfg struct {
	DatabaseURL     string        `env:"DATABASE_URL"`          // Строка подключения к PostgreSQL
	UseInMemory     bool          `env:"USE_IN_MEMORY_STORAGE"` // Принудительное использование хранилища в памяти
	ConnectAttempts int           `env:"DB_CONNECT_ATTEMPTS" envDefault:"3"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	RetryBaseDelay  time.Duration `env:"DB_RETRY_BASE_DELAY" envDefault:"500ms"`
	RetryMaxDelay   time.Duration `env:"DB_RETRY_MAX_DELAY" envDefault:"5s"`
	MaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	SeedTimeout     time.Duration `env:"DB_SEED_TIMEOUT" envDefault:"15s"`
}

// UsePersistent сообщает, нужно ли пытаться поднять PostgreSQL-хранилище.
func (c *StorageCfg) UsePersistent() bool {
	return c.DatabaseURL != "" && !c.UseInMemory
}

type RedisCfg struct {
	Addr        string        `env:"REDIS_ADDR"` // Пустой адрес отключает кэш
	Password    string        `env:"REDIS_PASSWORD"`
	User        string        `env:"REDIS_USER"`
	DB          int           `env:"REDIS_DB_ID" envDefault:"0"`
	MaxRetries  int           `env:"MAX_RETRIES" envDefault:"3"`
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	Timeout     time.Duration `env:"REDIS_TIMEOUT" envDefault:"3s"`
	ProductTTL  time.Duration `env:"PRODUCT_TTL" envDefault:"3m"`
}

func (c *RedisCfg) Enabled() bool {
	return c.Addr != ""
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storage, err := loadStorageCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Storage: storage,
		Redis:   redis,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	var c HTTPConfig
	if err := env.Parse(&c); err != nil {
		log.Errorf(err, "invalid HTTP configuration")
		return nil, err
	}

	return &c, nil
}

func loadStorageCfg(log logger.Logger) (*StorageCfg, error) {
	var c StorageCfg
	if err := env.Parse(&c); err != nil {
		log.Errorf(err, "invalid storage configuration")
		return nil, err
	}

	if c.ConnectAttempts < 1 {
		log.Errorf(e.ErrIncorrectEnvValue, "invalid DB_CONNECT_ATTEMPTS: %d", c.ConnectAttempts)
		return nil, e.Wrap("DB_CONNECT_ATTEMPTS", e.ErrIncorrectEnvValue)
	}

	if c.MaxConns < 1 {
		log.Errorf(e.ErrIncorrectEnvValue, "invalid DB_MAX_CONNS: %d", c.MaxConns)
		return nil, e.Wrap("DB_MAX_CONNS", e.ErrIncorrectEnvValue)
	}

	return &c, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	var c RedisCfg
	if err := env.Parse(&c); err != nil {
		log.Errorf(err, "invalid Redis configuration")
		return nil, err
	}

	return &c, nil
}
