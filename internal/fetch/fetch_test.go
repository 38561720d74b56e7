package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchBytesWithTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q", got)
		}
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"snippets":[]}`))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	data, err := FetchBytesWithTimeout(context.Background(), srv.URL+"/ok", time.Second, 0)
	if err != nil {
		t.Fatalf("fetch ok: %v", err)
	}
	if string(data) != `{"snippets":[]}` {
		t.Fatalf("body = %q", data)
	}

	if _, err := FetchBytesWithTimeout(context.Background(), srv.URL+"/big", time.Second, 16); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("fetch big error = %v; want ErrTooLarge", err)
	}
	if _, err := FetchBytesWithTimeout(context.Background(), srv.URL+"/missing", time.Second, 0); !errors.Is(err, ErrStatus) {
		t.Fatalf("fetch missing error = %v; want ErrStatus", err)
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/t.json": true,
		"http://localhost:8080/x":    true,
		"transcript.json":            false,
		"/tmp/transcript.json":       false,
		"ftp://example.com/x":        false,
		"-":                          false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v; want %v", in, got, want)
		}
	}
}
