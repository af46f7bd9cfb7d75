package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestStaticFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("User-Agent = %q, want %q", ua, "test-agent")
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("text\nhello world\n"))
	}))
	defer srv.Close()

	f := NewStatic(StaticConfig{UserAgent: "test-agent"})
	content, err := f.Fetch(context.Background(), srv.URL+"/tweets.csv")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if content.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", content.StatusCode)
	}
	if content.ContentType != "text/csv" {
		t.Errorf("ContentType = %q", content.ContentType)
	}
	if string(content.Body) != "text\nhello world\n" {
		t.Errorf("Body = %q", content.Body)
	}
}

func TestStaticFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := NewStatic(StaticConfig{})
	content, err := f.Fetch(context.Background(), srv.URL+"/missing.csv")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if content.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", content.StatusCode)
	}
}

func TestStaticFetcher_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewStatic(StaticConfig{}).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestNewStatic_Defaults(t *testing.T) {
	f := NewStatic(StaticConfig{})
	if f.config.UserAgent != defaultUserAgent {
		t.Errorf("UserAgent = %q", f.config.UserAgent)
	}
	if f.config.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v", f.config.Timeout)
	}
	if f.config.MaxBodySize != DefaultStaticConfig().MaxBodySize {
		t.Errorf("MaxBodySize = %d, want default %d", f.config.MaxBodySize, DefaultStaticConfig().MaxBodySize)
	}
	if f.Type() != "static" {
		t.Errorf("Type() = %q", f.Type())
	}
}

func TestStaticFetcher_MaxBodySize(t *testing.T) {
	body := strings.Repeat("x", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		maxSize int
		want    int
	}{
		{"limited", 10, 10},
		{"default", 0, 100},
		{"unlimited", -1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := NewStatic(StaticConfig{MaxBodySize: tt.maxSize}).Fetch(context.Background(), srv.URL)
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if len(content.Body) != tt.want {
				t.Errorf("len(Body) = %d, want %d", len(content.Body), tt.want)
			}
		})
	}
}
