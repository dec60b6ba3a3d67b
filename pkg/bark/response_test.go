package bark

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New("devkey", WithServerURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, srv
}

func TestResponseSuccess(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"message":"ok","timestamp":1700000000}`))
	})

	resp, err := c.Send(context.Background(), Notification{Body: "b"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.Message() != "ok" {
		t.Fatalf("message: got %q", resp.Message())
	}
	// The body is passed through verbatim, extra fields included.
	if _, ok := resp["timestamp"]; !ok {
		t.Fatalf("expected timestamp passthrough, got %v", resp)
	}
	if code, ok := resp.Code(); !ok || code != 200 {
		t.Fatalf("code: got %d ok=%v", code, ok)
	}
}

func TestResponseAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":400,"message":"bad key"}`))
	})

	_, err := c.Send(context.Background(), Notification{Body: "b"})
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
	if !strings.Contains(se.Message, "bad key") {
		t.Fatalf("message: got %q", se.Message)
	}
	if se.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d", se.StatusCode)
	}
	if se.Response == nil || se.Response.Message() != "bad key" {
		t.Fatalf("parsed body must be attached, got %v", se.Response)
	}
}

func TestResponseHTTPError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Send(context.Background(), Notification{Body: "b"})
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status: got %d", se.StatusCode)
	}
	if !strings.Contains(se.RawBody, "boom") {
		t.Fatalf("raw body: got %q", se.RawBody)
	}
	if se.Response != nil {
		t.Fatalf("no parsed body expected on HTTP error")
	}
}

func TestResponseInvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := c.Send(context.Background(), Notification{Body: "b"})
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
	if se.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d", se.StatusCode)
	}
	if !strings.Contains(se.Message, "invalid JSON") {
		t.Fatalf("message: got %q", se.Message)
	}
	if se.RawBody != "<html>not json</html>" {
		t.Fatalf("raw body: got %q", se.RawBody)
	}
}

func TestResponseMissingCode(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"no code field"}`))
	})

	_, err := c.Send(context.Background(), Notification{Body: "b"})
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
	if !strings.Contains(se.Message, "no code field") {
		t.Fatalf("message: got %q", se.Message)
	}
}

func TestResponseCodeTypes(t *testing.T) {
	if code, ok := (Response{"code": float64(200)}).Code(); !ok || code != 200 {
		t.Fatalf("float64: got %d ok=%v", code, ok)
	}
	if code, ok := (Response{"code": 200}).Code(); !ok || code != 200 {
		t.Fatalf("int: got %d ok=%v", code, ok)
	}
	if _, ok := (Response{"code": "200"}).Code(); ok {
		t.Fatalf("string code must not parse")
	}
	if _, ok := (Response{}).Code(); ok {
		t.Fatalf("missing code must not parse")
	}
}

func TestServerErrorString(t *testing.T) {
	se := &ServerError{StatusCode: 500, Message: "API error: nope"}
	if got := se.Error(); got != "API error: nope (status code: 500)" {
		t.Fatalf("got %q", got)
	}
	se = &ServerError{Message: "just a message"}
	if got := se.Error(); got != "just a message" {
		t.Fatalf("got %q", got)
	}
}
