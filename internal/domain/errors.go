package domain

import (
	"errors"
	"fmt"
)

// ErrCityRequired is returned when a render is requested without a city.
var ErrCityRequired = errors.New("city is required")

// ErrProviderUnreachable marks a provider call that got no HTTP response.
var ErrProviderUnreachable = errors.New("weather provider unreachable")

// TransportError reports a non-200 HTTP status from the weather provider.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP Error: %d", e.StatusCode)
}

// ProviderError reports an application-level failure embedded in an
// otherwise successful response (cod != 200).
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("API Error: %s", e.Message)
}

// ErrorKind classifies a render failure for metrics and logs: "transport",
// "application" or "internal".
func ErrorKind(err error) string {
	var te *TransportError
	var pe *ProviderError
	switch {
	case errors.As(err, &te):
		return "transport"
	case errors.As(err, &pe):
		return "application"
	default:
		return "internal"
	}
}
