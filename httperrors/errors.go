package httperrors

import (
	"net/http"

	"github.com/txix-open/isp-kit/json"
	"view-counter-service/domain"
)

type HttpError struct {
	statusCode  int
	userMessage string
	headers     http.Header
	err         error
}

func New(statusCode int, userMessage string, internalError error) HttpError {
	return HttpError{
		statusCode:  statusCode,
		userMessage: userMessage,
		err:         internalError,
	}
}

func (e HttpError) WithHeader(name string, value string) HttpError {
	if e.headers == nil {
		e.headers = http.Header{}
	}
	e.headers.Set(name, value)
	return e
}

func (e HttpError) Error() string {
	return e.err.Error()
}

func (e HttpError) WriteError(w http.ResponseWriter) error {
	for name, values := range e.headers {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.statusCode)
	return json.NewEncoder(w).Encode(domain.Error{Error: e.userMessage})
}
