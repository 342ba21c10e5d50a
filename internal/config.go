package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8000"`
	Env      string `env:"ENV,default=development"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=168h"`

	SendTimeout          time.Duration `env:"SEND_TIMEOUT,default=2s"`
	MaxConcurrentSends   int           `env:"MAX_CONCURRENT_SENDS,default=64"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	WSPingInterval       time.Duration `env:"WS_PING_INTERVAL,default=25s"`
	WSPongWait           time.Duration `env:"WS_PONG_WAIT,default=60s"`
	WSWriteTimeout       time.Duration `env:"WS_WRITE_TIMEOUT,default=10s"`
	WSMaxMessageBytes    int64         `env:"WS_MAX_MESSAGE_BYTES,default=4096"`
	// ALLOWED_ORIGINS is a comma separated list, "*" accepts any origin.
	AllowedOrigins string `env:"ALLOWED_ORIGINS,default=*"`

	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=2s"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=10s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT,default=5s"`
}

// LoadConfig reads an optional .env file then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (c Config) validate() error {
	if c.Env == "production" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production, got %d", len(c.JWTSecret))
	}
	if c.SendTimeout <= 0 {
		return fmt.Errorf("SEND_TIMEOUT must be positive, got %s", c.SendTimeout)
	}
	if c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("CONNECTION_BUFFER_SIZE must be positive, got %d", c.ConnectionBufferSize)
	}
	return nil
}
