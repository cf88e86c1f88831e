package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"view-counter-service/domain"
	"view-counter-service/middleware"
	"view-counter-service/request"
)

type identityCapture struct {
	identity *domain.Identity
}

func (c *identityCapture) Handle(ctx *request.Context) error {
	c.identity = ctx.Identity()
	return nil
}

func resolveIdentity(t *testing.T, headers map[string]string) *domain.Identity {
	t.Helper()

	req := httptest.NewRequest("POST", "/views/hello-world", nil)
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	capture := &identityCapture{}
	chain := middleware.Chain(capture, middleware.ClientIdentity())
	err := chain.Handle(request.NewContext(req, httptest.NewRecorder()))
	require.NoError(t, err)

	return capture.identity
}

func TestClientIdentityPrefersRealIpHeader(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	identity := resolveIdentity(t, map[string]string{
		"X-Real-IP":       "203.0.113.7",
		"X-Forwarded-For": "10.0.0.1, 10.0.0.2",
	})
	require.NotNil(identity)
	require.EqualValues("203.0.113.7", identity.Ip)
}

func TestClientIdentityFallsBackToFirstForwardedFor(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	identity := resolveIdentity(t, map[string]string{
		"X-Forwarded-For": " 10.0.0.1 , 10.0.0.2",
	})
	require.NotNil(identity)
	require.EqualValues("10.0.0.1", identity.Ip)
}

func TestClientIdentityUnknownWithoutHeaders(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	identity := resolveIdentity(t, nil)
	require.Nil(identity)
}
