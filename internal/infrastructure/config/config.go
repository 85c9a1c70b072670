package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	sharedConfig "likenovel/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	AnalysisLog sharedConfig.AnalysisLogConfig `mapstructure:"analysis_log"`
	OIDC        sharedConfig.OIDCConfig        `mapstructure:"oidc"`
	AdminToken  sharedConfig.AdminTokenConfig  `mapstructure:"admin_token"`
	Storage     sharedConfig.StorageConfig     `mapstructure:"storage"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	RateLimit   sharedConfig.RateLimitConfig   `mapstructure:"rate_limit"`
	App         sharedConfig.AppConfig         `mapstructure:"app"`
	Payment     sharedConfig.PaymentConfig     `mapstructure:"payment"`
}

// Load reads configuration once from the optional config file and LIKENOVEL_* environment
// variables. The returned value is never mutated afterwards.
func Load(env string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("LIKENOVEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.OIDC.BaseURL = strings.TrimRight(cfg.OIDC.BaseURL, "/")
	cfg.Storage.CDNURL = strings.TrimRight(cfg.Storage.CDNURL, "/")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.url", "root:password@tcp(localhost:3306)/likenovel?charset=utf8mb4&parseTime=true&loc=Local")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 30)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("analysis_log.path", "logs/analysis.log")
	v.SetDefault("analysis_log.max_size_mb", 100)
	v.SetDefault("analysis_log.max_backups", 10)
	v.SetDefault("analysis_log.max_age_days", 30)

	v.SetDefault("oidc.base_url", "http://localhost:8081/realms/likenovel/protocol/openid-connect")
	v.SetDefault("oidc.audience", "")
	v.SetDefault("oidc.public_key", "")
	v.SetDefault("oidc.clients.standard.client_id", "likenovel")
	v.SetDefault("oidc.clients.standard.client_secret", "")
	v.SetDefault("oidc.clients.keep_signin.client_id", "likenovel-keep-signin")
	v.SetDefault("oidc.clients.keep_signin.client_secret", "")
	v.SetDefault("oidc.jwks_ttl", 5*time.Minute)
	v.SetDefault("oidc.http_timeout", 5*time.Second)

	v.SetDefault("admin_token.private_key", "")
	v.SetDefault("admin_token.issuer", "likenovel-admin")
	v.SetDefault("admin_token.expires_seconds", 3600)

	v.SetDefault("storage.region", "kr-standard")
	v.SetDefault("storage.bucket", "likenovel")
	v.SetDefault("storage.cdn_url", "https://cdn.likenovel.net")
	v.SetDefault("storage.presign_ttl", 15*time.Minute)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("app.default_writer_id", -1)
	v.SetDefault("app.timezone", "Asia/Seoul")
	v.SetDefault("app.varchar.short", 50)
	v.SetDefault("app.varchar.medium", 200)
	v.SetDefault("app.varchar.long", 1000)

	v.SetDefault("payment.webhook_secret", "")
}
