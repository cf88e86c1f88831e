package conf

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultBindAddress  = ":8080"
	defaultRedisAddress = "127.0.0.1:6379"

	defaultRateLimitMaxRequests = 20
)

type Local struct {
	BindAddress    string
	Redis          Redis
	AllowedOrigins []string
	DedupSalt      string
	ApiKey         string
	RateLimit      RateLimit
	Logging        Logging
}

type Redis struct {
	Address  string
	Username string
	Password string
}

type RateLimit struct {
	MaxRequests int64
}

type Logging struct {
	RequestLogEnable bool
}

// LoadLocal reads the service configuration from the environment.
// AllowedOrigins and DedupSalt are deliberately not validated here:
// their absence is surfaced as a per-request misconfiguration error,
// so a badly provisioned instance still answers with well-formed JSON.
func LoadLocal() Local {
	return Local{
		BindAddress: envOrDefault("BIND_ADDRESS", defaultBindAddress),
		Redis: Redis{
			Address:  envOrDefault("REDIS_ADDRESS", defaultRedisAddress),
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		DedupSalt:      os.Getenv("DEDUP_SALT"),
		ApiKey:         os.Getenv("VIEW_COUNTER_API_KEY"),
		RateLimit: RateLimit{
			MaxRequests: envInt64OrDefault("RATE_LIMIT_MAX_REQUESTS", defaultRateLimitMaxRequests),
		},
		Logging: Logging{
			RequestLogEnable: os.Getenv("REQUEST_LOG_ENABLE") == "true",
		},
	}
}

func splitOrigins(value string) []string {
	if value == "" {
		return nil
	}
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func envOrDefault(name string, defaultValue string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	return value
}

func envInt64OrDefault(name string, defaultValue int64) int64 {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
