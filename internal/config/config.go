// config реализует конфигурацию wikinow-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env          string             `yaml:"env" env:"ENV" env-default:"local"`
	HTTP         HTTPConfig         `yaml:"http"`
	DB           DBConfig           `yaml:"db"`
	Wiki         WikiConfig         `yaml:"wiki"`
	Authenticity AuthenticityConfig `yaml:"authenticity"`
	Auth         AuthConfig         `yaml:"auth"`
	Timeouts     TimeoutConfig      `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к MongoDB.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// WikiConfig — публичный Wikimedia REST API.
type WikiConfig struct {
	BaseURL string `yaml:"base_url" env:"WIKI_BASE_URL" env-default:"https://api.wikimedia.org"`
	// UserAgent обязателен по правилам Wikimedia для идентификации клиента.
	UserAgent string        `yaml:"user_agent" env:"WIKI_USER_AGENT" env-default:"wikinow-service/1.0"`
	Timeout   time.Duration `yaml:"timeout" env:"WIKI_TIMEOUT" env-default:"15s"`
}

// AuthenticityConfig — внешний сервис оценки «человечности» текста,
// гейт на пути создания поста.
type AuthenticityConfig struct {
	URL   string `yaml:"url" env:"AUTHENTICITY_URL" env-default:"https://api.gowinston.ai/v2/ai-content-detection"`
	Token string `yaml:"token" env:"AUTHENTICITY_TOKEN"`
	// Порог «скорее написано человеком»; посты со score ниже блокируются.
	Threshold int           `yaml:"threshold" env:"AUTHENTICITY_THRESHOLD" env-default:"70"`
	Timeout   time.Duration `yaml:"timeout" env:"AUTHENTICITY_TIMEOUT" env-default:"15s"`
}

// AuthConfig — проверка access-токенов провайдера идентичности.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

// TimeoutConfig — сервисные таймауты.
type TimeoutConfig struct {
	// Общий дедлайн обработки HTTP-запроса.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"30s"`
	// Жёсткий дедлайн листинговых операций координатора.
	Listing time.Duration `yaml:"listing" env:"LISTING_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Wiki.BaseURL == "" {
		return fmt.Errorf("wiki.base_url is required")
	}

	if c.Wiki.Timeout <= 0 {
		return fmt.Errorf("wiki.timeout must be > 0")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.Authenticity.Threshold < 0 || c.Authenticity.Threshold > 100 {
		return fmt.Errorf("authenticity.threshold must be in [0, 100]")
	}

	if c.Timeouts.Listing <= 0 {
		return fmt.Errorf("timeouts.listing must be > 0")
	}

	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}

	return nil
}
