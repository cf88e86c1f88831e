package conf_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"view-counter-service/conf"
)

func TestLoadLocalDefaults(t *testing.T) {
	require := require.New(t)

	for _, name := range []string{
		"BIND_ADDRESS",
		"REDIS_ADDRESS",
		"ALLOWED_ORIGINS",
		"DEDUP_SALT",
		"VIEW_COUNTER_API_KEY",
		"RATE_LIMIT_MAX_REQUESTS",
		"REQUEST_LOG_ENABLE",
	} {
		t.Setenv(name, "")
	}

	config := conf.LoadLocal()
	require.EqualValues(":8080", config.BindAddress)
	require.EqualValues("127.0.0.1:6379", config.Redis.Address)
	require.EqualValues(20, config.RateLimit.MaxRequests)
	require.Empty(config.AllowedOrigins)
	require.Empty(config.DedupSalt)
	require.Empty(config.ApiKey)
	require.False(config.Logging.RequestLogEnable)
}

func TestLoadLocalParsesOrigins(t *testing.T) {
	require := require.New(t)

	t.Setenv("ALLOWED_ORIGINS", " https://sumit.ml , https://www.sumit.ml,, ")
	config := conf.LoadLocal()
	require.EqualValues([]string{"https://sumit.ml", "https://www.sumit.ml"}, config.AllowedOrigins)
}

func TestLoadLocalReadsSecretsAndLimits(t *testing.T) {
	require := require.New(t)

	t.Setenv("DEDUP_SALT", "salt")
	t.Setenv("VIEW_COUNTER_API_KEY", "key")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("REQUEST_LOG_ENABLE", "true")

	config := conf.LoadLocal()
	require.EqualValues("salt", config.DedupSalt)
	require.EqualValues("key", config.ApiKey)
	require.EqualValues(5, config.RateLimit.MaxRequests)
	require.True(config.Logging.RequestLogEnable)
}
