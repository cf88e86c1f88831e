package request

import (
	"context"
	"net/http"
	"strings"

	"view-counter-service/domain"
)

type Context struct {
	request        *http.Request
	responseWriter http.ResponseWriter

	slug     string
	identity *domain.Identity
}

func NewContext(request *http.Request, response http.ResponseWriter) *Context {
	return &Context{
		request:        request,
		responseWriter: response,
	}
}

func (c *Context) Request() *http.Request {
	return c.request
}

func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.responseWriter
}

func (c *Context) SetResponseWriter(writer http.ResponseWriter) {
	c.responseWriter = writer
}

func (c *Context) SetSlug(slug string) {
	c.slug = slug
}

func (c *Context) Slug() string {
	return c.slug
}

func (c *Context) SetIdentity(identity *domain.Identity) {
	c.identity = identity
}

// Identity returns the resolved client identity, nil when the client
// could not be identified.
func (c *Context) Identity() *domain.Identity {
	return c.identity
}

func (c *Context) Origin() string {
	return strings.TrimSpace(c.request.Header.Get("Origin"))
}

func (c *Context) Context() context.Context {
	return c.request.Context()
}

func (c *Context) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}
