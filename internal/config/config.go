package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Content  ContentConfig  `yaml:"content"`
	Notify   NotifyConfig   `yaml:"notify"`
}

// ServerConfig holds settings of the operational HTTP server.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart   bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"vidafit-backend"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`
}

// AuthConfig holds the settings used to verify access tokens issued by the
// identity service.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"vidafit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ContentConfig holds limits applied to user-generated content.
type ContentConfig struct {
	MaxTitleLength   int `yaml:"max_title_length"   env:"CONTENT_MAX_TITLE_LENGTH"   env-default:"200"`
	MaxBodyLength    int `yaml:"max_body_length"    env:"CONTENT_MAX_BODY_LENGTH"    env-default:"10000"`
	MaxCommentLength int `yaml:"max_comment_length" env:"CONTENT_MAX_COMMENT_LENGTH" env-default:"2000"`
	FeedPageSize     int `yaml:"feed_page_size"     env:"CONTENT_FEED_PAGE_SIZE"     env-default:"20"`
	MaxFeedPageSize  int `yaml:"max_feed_page_size" env:"CONTENT_MAX_FEED_PAGE_SIZE" env-default:"100"`
	HistoryPageSize  int `yaml:"history_page_size"  env:"CONTENT_HISTORY_PAGE_SIZE"  env-default:"50"`
}

// NotifyConfig holds settings of the asynchronous event dispatcher.
type NotifyConfig struct {
	QueueSize int `yaml:"queue_size" env:"NOTIFY_QUEUE_SIZE" env-default:"256"`
	Workers   int `yaml:"workers"    env:"NOTIFY_WORKERS"    env-default:"2"`
}
