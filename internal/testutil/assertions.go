package testutil

import (
	"encoding/json"
	"net/http"
	"testing"
)

// AssertJSONResponse decodes the response body into out, failing the test on
// decode errors.
func AssertJSONResponse(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// DecodeError decodes the standard error payload.
func DecodeError(t *testing.T, resp *http.Response) (string, map[string]string) {
	t.Helper()

	var payload struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	AssertJSONResponse(t, resp, &payload)
	return payload.Message, payload.Errors
}
