package config

import "time"

// Config is the full runtime configuration of the gateway process.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Identity  IdentityConfig  `koanf:"identity"`
	Data      DataConfig      `koanf:"data"`
	Log       LogConfig       `koanf:"log"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
}

// ServerConfig configures the HTTP listener and request handling limits.
type ServerConfig struct {
	Host string `koanf:"host" env:"SERVER_HOST"`
	Port int    `koanf:"port" env:"SERVER_PORT" validate:"required,min=1,max=65535"`

	// PublicCourseList exposes GET /api/courses without authentication.
	// Defaults to false: listing requires an authenticated admin.
	PublicCourseList bool `koanf:"public_course_list" env:"SERVER_PUBLIC_COURSE_LIST"`

	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" env:"SERVER_CORS_ALLOWED_ORIGINS"`
	MaxBodyBytes       int64    `koanf:"max_body_bytes"       env:"SERVER_MAX_BODY_BYTES"       validate:"min=1"`
}

// IdentityConfig points at the external identity service that verifies
// bearer credentials and manages accounts.
type IdentityConfig struct {
	URL        string          `koanf:"url"         env:"IDENTITY_URL"         validate:"required,url"`
	ServiceKey SensitiveString `koanf:"service_key" env:"IDENTITY_SERVICE_KEY" validate:"required" sensitive:"true"`
	Timeout    time.Duration   `koanf:"timeout"     env:"IDENTITY_TIMEOUT"`
}

// DataConfig points at the external data service that stores profiles and
// domain resources.
type DataConfig struct {
	URL        string          `koanf:"url"         env:"DATA_URL"         validate:"required,url"`
	ServiceKey SensitiveString `koanf:"service_key" env:"DATA_SERVICE_KEY" validate:"required" sensitive:"true"`
	Timeout    time.Duration   `koanf:"timeout"     env:"DATA_TIMEOUT"`
}

// LogConfig configures structured logging output.
type LogConfig struct {
	Level string `koanf:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `koanf:"json"  env:"LOG_JSON"`
}

// RateLimitConfig configures the per-client request rate limit.
type RateLimitConfig struct {
	Enabled bool          `koanf:"enabled" env:"RATELIMIT_ENABLED"`
	Limit   int64         `koanf:"limit"   env:"RATELIMIT_LIMIT"  validate:"min=0"`
	Period  time.Duration `koanf:"period"  env:"RATELIMIT_PERIOD"`
}

// Default returns the configuration defaults applied before environment
// overrides. Service endpoints and credentials have no default on purpose:
// the process must refuse to start without them.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			MaxBodyBytes: 1 << 20,
		},
		Identity: IdentityConfig{
			Timeout: 10 * time.Second,
		},
		Data: DataConfig{
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			Limit:   100,
			Period:  1 * time.Minute,
		},
	}
}
