package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "pessoas-dev-secret"

// Config contém todas as configurações da aplicação
type Config struct {
	Env       string
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	I18n      I18nConfig
	Kafka     KafkaConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port      string
	Host      string
	BaseURL   string // URL base da API para construir URIs RFC 7807
	StaticDir string // build do SPA; vazio desativa
}

type DatabaseConfig struct {
	Driver      string // sqlite (memória) ou postgres
	DSN         string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	Seed        bool
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
	CookieName   string
	CookieSecure bool
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RateLimitConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

// Load carrega as configurações do arquivo .env (opcional) e das variáveis de ambiente
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("STATIC_DIR", "")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "file:pessoas?mode=memory&cache=shared")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_SEED", true)

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ACCESS_EXPIRY", "8h")
	v.SetDefault("JWT_COOKIE_NAME", "jwt_token")
	v.SetDefault("JWT_COOKIE_SECURE", true)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "https://localhost:53253")

	v.SetDefault("I18N_LOCALES_DIR", "") // vazio usa as traduções embutidas
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "pt-BR")

	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "pessoa.saved")

	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("LOGIN_RATE_BURST", 5)

	return v
}

// FromViper monta a Config a partir de uma instância do viper já configurada
func FromViper(v *viper.Viper) (*Config, error) {
	expiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY: %w", err)
	}

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:      v.GetString("PORT"),
			Host:      v.GetString("HOST"),
			BaseURL:   v.GetString("API_BASE_URL"),
			StaticDir: v.GetString("STATIC_DIR"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:         v.GetString("DB_DSN"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			Seed:        v.GetBool("DB_SEED"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: expiry,
			CookieName:   v.GetString("JWT_COOKIE_NAME"),
			CookieSecure: v.GetBool("JWT_COOKIE_SECURE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
			LoginBurst:     v.GetInt("LOGIN_RATE_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Env == "production" && c.JWT.Secret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}

	if c.JWT.AccessExpiry <= 0 {
		return errors.New("JWT_ACCESS_EXPIRY must be positive")
	}

	return nil
}

// ConnectionString retorna a connection string do banco configurado
func (d *DatabaseConfig) ConnectionString() string {
	if d.Driver == "postgres" && d.Host != "" {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
		)
	}
	return d.DSN
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
