package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	drivermysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/config"
	appLogger "likenovel/internal/shared/logger"
)

// BuildDSN normalizes the configured URL into a go-sql-driver DSN. A leading
// "mysql://" scheme is accepted. Times are parsed in the business timezone because the
// schema stores naive DATETIME values.
func BuildDSN(url string) (string, error) {
	raw := strings.TrimPrefix(url, "mysql://")
	if raw == "" {
		return "", fmt.Errorf("database url is empty")
	}
	if !strings.Contains(raw, "@tcp(") && !strings.Contains(raw, "@unix(") {
		// user:pass@host:port/db
		if at := strings.LastIndex(raw, "@"); at >= 0 {
			rest := raw[at+1:]
			slash := strings.Index(rest, "/")
			if slash < 0 {
				return "", fmt.Errorf("database url has no database name")
			}
			raw = raw[:at+1] + "tcp(" + rest[:slash] + ")" + rest[slash:]
		}
	}

	cfg, err := drivermysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = biztime.Location()
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	return cfg.FormatDSN(), nil
}

// Open connects with the configured pool policy and verifies the connection.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg.URL)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		gormWriter{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	database, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		NowFunc:                biztime.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormWriter feeds gorm's printf-style logger into slog.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log := appLogger.Get().With("component", "gorm")

	switch {
	case strings.Contains(msg, "SLOW SQL"):
		log.Warn("slow query", "details", msg)
	case strings.Contains(msg, "[error]"):
		log.Error("query failed", "details", msg)
	default:
		log.Debug("query", "details", msg)
	}
}
