package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds the relational database DSN and pool policy.
// MaxOpenConns covers the base pool plus overflow.
type DatabaseConfig struct {
	URL             string `mapstructure:"url"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AnalysisLogConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type OIDCClientConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

type OIDCClientsConfig struct {
	Standard   OIDCClientConfig `mapstructure:"standard"`
	KeepSignin OIDCClientConfig `mapstructure:"keep_signin"`
}

type OIDCConfig struct {
	BaseURL     string            `mapstructure:"base_url"`
	Audience    string            `mapstructure:"audience"`
	PublicKey   string            `mapstructure:"public_key"`
	Clients     OIDCClientsConfig `mapstructure:"clients"`
	JWKSTTL     time.Duration     `mapstructure:"jwks_ttl"`
	HTTPTimeout time.Duration     `mapstructure:"http_timeout"`
}

func (o *OIDCConfig) CertsURL() string {
	return o.BaseURL + "/certs"
}

func (o *OIDCConfig) IntrospectURL() string {
	return o.BaseURL + "/token/introspect"
}

// ClientFor picks the credential pair matching the token's azp claim.
func (o *OIDCConfig) ClientFor(azp string) OIDCClientConfig {
	if azp != "" && azp == o.Clients.KeepSignin.ClientID {
		return o.Clients.KeepSignin
	}
	return o.Clients.Standard
}

type AdminTokenConfig struct {
	PrivateKey     string `mapstructure:"private_key"`
	Issuer         string `mapstructure:"issuer"`
	ExpiresSeconds int    `mapstructure:"expires_seconds"`
}

type StorageConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	Region     string        `mapstructure:"region"`
	Bucket     string        `mapstructure:"bucket"`
	AccessKey  string        `mapstructure:"access_key"`
	SecretKey  string        `mapstructure:"secret_key"`
	CDNURL     string        `mapstructure:"cdn_url"`
	PresignTTL time.Duration `mapstructure:"presign_ttl"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// VarcharConfig mirrors the column sizes used by request validation.
type VarcharConfig struct {
	Short  int `mapstructure:"short"`
	Medium int `mapstructure:"medium"`
	Long   int `mapstructure:"long"`
}

type AppConfig struct {
	DefaultWriterID int64         `mapstructure:"default_writer_id"`
	Timezone        string        `mapstructure:"timezone"`
	Varchar         VarcharConfig `mapstructure:"varchar"`
}

type PaymentConfig struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
}
