package bark

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// successCode is the API-level success sentinel in the response body,
// distinct from the HTTP status.
const successCode = 200

// Response is the Bark server's JSON reply, passed through verbatim.
type Response map[string]any

// Code extracts the numeric code field. The second return is false when
// the field is missing or not a number.
func (r Response) Code() (int, bool) {
	switch v := r["code"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// Message returns the message field, or "" when absent.
func (r Response) Message() string {
	s, _ := r["message"].(string)
	return s
}

// decodeResponse is the single interpreter shared by Send and SendPost.
func decodeResponse(resp *http.Response) (Response, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}
	text := strings.TrimSpace(string(raw))

	if resp.StatusCode != http.StatusOK {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("server returned error: %s", text),
			RawBody:    text,
		}
	}

	var parsed Response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("invalid JSON response: %v", err),
			RawBody:    text,
		}
	}

	if code, ok := parsed.Code(); !ok || code != successCode {
		msg := parsed.Message()
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API error: %s", msg),
			RawBody:    text,
			Response:   parsed,
		}
	}
	return parsed, nil
}
