package config

import "time"

// DB holds connection settings for the Postgres pool.
type DB struct {
	Url             string        `envconfig:"CONN_STR"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
}

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8080"`
}

// App is the process-wide configuration, loaded from the environment.
type App struct {
	Env           string  `envconfig:"APP_ENV" default:"development"`
	Server        *Server `envconfig:"SERVER"`
	DB            *DB     `envconfig:"DB"`
	StatementSize int     `envconfig:"STATEMENT_SIZE" default:"10"`
}
