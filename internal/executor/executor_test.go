package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// roundTripperFunc lets tests stand in for the network
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestFetch_ReturnsBodyVerbatim(t *testing.T) {
	body := "  {\"ok\":true}\n\t"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	}))
	defer server.Close()

	client := New(Options{})
	got, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != body {
		t.Errorf("Fetch() = %q, want %q", got, body)
	}
}

func TestFetch_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nothing here", http.StatusNotFound)
	}))
	defer server.Close()

	got, err := New(Options{}).Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "nothing here\n" {
		t.Errorf("Fetch() = %q, want %q", got, "nothing here\n")
	}
}

func TestFetch_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	if _, err := New(Options{UserAgent: "restget/test"}).Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotUA != "restget/test" {
		t.Errorf("User-Agent = %q, want restget/test", gotUA)
	}
}

func TestFetch_CustomTransport(t *testing.T) {
	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.String() != "https://httpbin.org/get" {
			t.Errorf("URL = %s, want https://httpbin.org/get", req.URL)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Request:    req,
		}, nil
	})

	got, err := New(Options{Transport: transport}).Fetch(context.Background(), "https://httpbin.org/get")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("Fetch() = %q, want %q", got, `{"ok":true}`)
	}
}

func TestFetch_Errors(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"empty url", ""},
		{"unreachable host", closedURL},
		{"unsupported scheme", "ftp://example.com/file"},
		{"malformed url", "http://[::1"},
	}

	client := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.Fetch(context.Background(), tt.url)
			if err == nil {
				t.Fatalf("Fetch(%q) expected error, got body %q", tt.url, got)
			}
			if got != "" {
				t.Errorf("Fetch(%q) body = %q, want empty on error", tt.url, got)
			}
		})
	}
}

func TestFetch_TruncatedBodyIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "hello")
		w.(http.Flusher).Flush()

		conn, _, err := w.(http.Hijacker).Hijack()
		if err != nil {
			t.Errorf("Hijack() error = %v", err)
			return
		}
		_ = conn.Close()
	}))
	defer server.Close()

	got, err := New(Options{}).Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatalf("Fetch() expected error for truncated body, got %q", got)
	}
	if got != "" {
		t.Errorf("Fetch() body = %q, want empty on error", got)
	}
	if !strings.Contains(err.Error(), server.URL) {
		t.Errorf("Fetch() error = %v, want it to name the URL", err)
	}
}

func TestFetch_TransportErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("connection reset")
	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, sentinel
	})

	_, err := New(Options{Transport: transport}).Fetch(context.Background(), "http://example.invalid/")
	if !errors.Is(err, sentinel) {
		t.Errorf("Fetch() error = %v, want wrapping %v", err, sentinel)
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(Options{Timeout: 50 * time.Millisecond})
	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Fetch() expected timeout error")
	}
}

func TestFetch_ConcurrentUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.URL.Query().Get("n"))
	}))
	defer server.Close()

	client := New(Options{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			want := fmt.Sprint(n)
			got, err := client.Fetch(context.Background(), server.URL+"/?n="+want)
			if err != nil {
				t.Errorf("Fetch() error = %v", err)
				return
			}
			if got != want {
				t.Errorf("Fetch() = %q, want %q", got, want)
			}
		}(i)
	}
	wg.Wait()
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0ms"},
		{999, "999ms"},
		{1000, "1.00s"},
		{1500, "1.50s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.ms); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int
		want  string
	}{
		{512, "512B"},
		{2048, "2.00KB"},
		{3 * 1024 * 1024, "3.00MB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
