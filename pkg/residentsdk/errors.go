package residentsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeInvalidReference = "invalid_reference"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeAlreadyRedeemed  = "already_redeemed"
	ErrorCodeRateLimited      = "rate_limit_exceeded"
	ErrorCodeServerError      = "server_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// APIError is returned by Client methods when the server answers with an
// unexpected status.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("resident api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("resident api: %s: %s", e.Code, e.Description)
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// parseErrorResponse builds an APIError from a response body, tolerating
// non-JSON bodies from proxies.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Error
		apiErr.Description = payload.ErrorDescription
	} else {
		apiErr.Description = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
