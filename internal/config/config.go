// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // "postgres" または "sqlite"
	URL          string `mapstructure:"url"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	DefaultAmount int   `mapstructure:"default_amount"`
	RandomSeed    int64 `mapstructure:"random_seed"` // 0 の場合は起動時刻から生成
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type TranslatorConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	SourceLang  string        `mapstructure:"source_lang"`
	TargetLang  string        `mapstructure:"target_lang"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

type ExtractorConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`

	// ローカル開発用。true の場合はプライベートアドレスのURLも取得する
	AllowPrivateNetworks bool `mapstructure:"allow_private_networks"`
}

type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Server     ServerConfig     `mapstructure:"server"`
	App        AppConfig        `mapstructure:"app"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Extractor  ExtractorConfig  `mapstructure:"extractor"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP") // APP_AUTH_ENABLED のように接頭辞をつける
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("database.driver", "DATABASE_DRIVER")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// Auth.Enabled は明示されていなければ有効にする
	applyDefaults(&Cfg, viper.IsSet("auth.enabled"))

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Default Amount: %d", Cfg.App.DefaultAmount)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れる
func applyDefaults(cfg *Config, authEnabledSet bool) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDatabaseDriver
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 100
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 10
	}
	if cfg.App.DefaultAmount <= 0 {
		cfg.App.DefaultAmount = DefaultAmount
	}
	if !authEnabledSet {
		cfg.Auth.Enabled = true
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Translator.BaseURL == "" {
		cfg.Translator.BaseURL = DefaultTranslatorURL
	}
	if cfg.Translator.SourceLang == "" {
		cfg.Translator.SourceLang = DefaultSourceLang
	}
	if cfg.Translator.TargetLang == "" {
		cfg.Translator.TargetLang = DefaultTargetLang
	}
	if cfg.Translator.Timeout <= 0 {
		cfg.Translator.Timeout = 10 * time.Second
	}
	if cfg.Translator.MaxAttempts <= 0 {
		cfg.Translator.MaxAttempts = 3
	}
	if cfg.Extractor.Timeout <= 0 {
		cfg.Extractor.Timeout = 30 * time.Second
	}
	if cfg.Extractor.MaxBodyBytes <= 0 {
		cfg.Extractor.MaxBodyBytes = DefaultMaxBodyBytes
	}
}
