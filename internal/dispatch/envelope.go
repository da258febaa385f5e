// Package dispatch relays tool invocations as HTTP requests against the
// open-data API and normalizes every outcome into a result envelope.
package dispatch

import "fmt"

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform success/error wrapper returned by every tool
// invocation. Exactly one of Results and ErrorDetails is set.
type Envelope struct {
	Status       string                 `json:"status"`
	Results      interface{}            `json:"results,omitempty"`
	ErrorDetails map[string]interface{} `json:"error_details,omitempty"`
}

// Success wraps a successful result.
func Success(results interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Results: results}
}

// Error wraps error details.
func Error(details map[string]interface{}) Envelope {
	return Envelope{Status: StatusError, ErrorDetails: details}
}

// Errorf wraps a formatted message as error details.
func Errorf(format string, args ...interface{}) Envelope {
	return Error(map[string]interface{}{"message": fmt.Sprintf(format, args...)})
}

// IsError reports whether the envelope carries an error.
func (e Envelope) IsError() bool {
	return e.Status == StatusError
}

// Validate checks the exactly-one invariant: a success envelope carries
// results and no error details, an error envelope the reverse.
func (e Envelope) Validate() error {
	hasResults := e.Results != nil
	hasDetails := e.ErrorDetails != nil
	switch e.Status {
	case StatusSuccess:
		if !hasResults || hasDetails {
			return fmt.Errorf("success envelope must set results and only results")
		}
	case StatusError:
		if hasResults || !hasDetails {
			return fmt.Errorf("error envelope must set error_details and only error_details")
		}
	default:
		return fmt.Errorf("unknown envelope status %q", e.Status)
	}
	return nil
}
