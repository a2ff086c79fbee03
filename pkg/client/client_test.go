package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdapi/go-sdk/internal/testutil"
	"github.com/tdapi/go-sdk/pkg/core"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		field   string
	}{
		{
			name: "valid config",
			config: Config{
				BaseURL: "http://localhost:8080",
			},
			wantErr: false,
		},
		{
			name: "valid config with https",
			config: Config{
				BaseURL: "https://api.example.com",
			},
			wantErr: false,
		},
		{
			name: "empty URL",
			config: Config{
				BaseURL: "",
			},
			wantErr: true,
			field:   "BaseURL",
		},
		{
			name: "invalid URL scheme",
			config: Config{
				BaseURL: "://invalid-scheme",
			},
			wantErr: true,
			field:   "BaseURL",
		},
		{
			name: "malformed URL",
			config: Config{
				BaseURL: "http://[::1:80",
			},
			wantErr: true,
			field:   "BaseURL",
		},
		{
			name: "relative URL",
			config: Config{
				BaseURL: "/v1/marketdata",
			},
			wantErr: true,
			field:   "BaseURL",
		},
		{
			name: "base URL with query",
			config: Config{
				BaseURL: "https://api.example.com/v1?apikey=K",
			},
			wantErr: true,
			field:   "BaseURL",
		},
		{
			name: "base URL with empty query",
			config: Config{
				BaseURL: "https://api.example.com/v1?",
			},
			wantErr: true,
			field:   "BaseURL",
		},
		{
			name: "base URL with fragment",
			config: Config{
				BaseURL: "https://api.example.com/v1#top",
			},
			wantErr: true,
			field:   "BaseURL",
		},
		{
			name: "negative timeout",
			config: Config{
				BaseURL: "https://api.example.com",
				Timeout: -time.Second,
			},
			wantErr: true,
			field:   "Timeout",
		},
		{
			name: "negative concurrency",
			config: Config{
				BaseURL:        "https://api.example.com",
				MaxConcurrency: -1,
			},
			wantErr: true,
			field:   "MaxConcurrency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				var configErr *core.ConfigError
				if !errors.As(err, &configErr) {
					t.Fatalf("Expected error type %T, got %T", configErr, err)
				}
				if configErr.Field != tt.field {
					t.Errorf("Expected error field %q, got %v", tt.field, configErr.Field)
				}
			} else {
				if client == nil {
					t.Fatal("New() returned nil client with no error")
				}
				if client.baseURL == nil {
					t.Error("Client baseURL should not be nil")
				}
				if client.baseURL.String() != tt.config.BaseURL {
					t.Errorf("Client baseURL = %v, want %v", client.baseURL.String(), tt.config.BaseURL)
				}
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{BaseURL: "https://api.example.com"})
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, DefaultMaxConcurrency, c.maxConcurrency)
	assert.Equal(t, "tdapi-go-sdk/"+Version, c.userAgent)
	assert.NotNil(t, c.logger)

	custom := &http.Client{}
	c, err = New(Config{BaseURL: "https://api.example.com", HTTPClient: custom, Timeout: time.Second})
	require.NoError(t, err)
	assert.Same(t, custom, c.httpClient)
}

func TestClient_URL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		req     *Request
		want    string
	}{
		{
			name:    "no params",
			baseURL: "https://api.example.com/v1",
			req:     NewRequest("/accounts"),
			want:    "https://api.example.com/v1/accounts",
		},
		{
			name:    "trailing slash on base",
			baseURL: "https://api.example.com/v1/",
			req:     NewRequest("accounts"),
			want:    "https://api.example.com/v1/accounts",
		},
		{
			name:    "empty path",
			baseURL: "https://api.example.com/v1",
			req:     NewRequest("").Set("symbol", "SPY"),
			want:    "https://api.example.com/v1/?symbol=SPY",
		},
		{
			name:    "encoded values keep order",
			baseURL: "https://api.example.com/v1",
			req:     NewRequest("/instruments").Set("symbol", "BRK.B").Set("projection", "symbol-search").Set("q", "a b"),
			want:    "https://api.example.com/v1/instruments?symbol=BRK.B&projection=symbol-search&q=a%20b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Config{BaseURL: tt.baseURL})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.URL(tt.req))
		})
	}
}

func TestClient_Do(t *testing.T) {
	var gotQuery, gotUserAgent, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(headerRequestID)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"SPY"}`))
	}))
	defer server.Close()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := New(Config{BaseURL: server.URL, UserAgent: "test-agent", Logger: logger})
	require.NoError(t, err)
	defer c.Close()

	req := NewRequest("/marketdata/SPY/quotes").Set("fields", "quote fundamental")
	require.NoError(t, req.SetDateTime("fromEnteredTime", "2020-01-15T13:45:30Z"))

	body, err := c.Do(context.Background(), req)
	require.NoError(t, err)

	assert.JSONEq(t, `{"symbol":"SPY"}`, string(body))
	assert.Equal(t, "fields=quote%20fundamental&fromEnteredTime=2020-01-15T13%3A45%3A30Z", gotQuery)
	assert.Equal(t, "test-agent", gotUserAgent)
	assert.Len(t, gotRequestID, 36)

	require.NotEmpty(t, hook.AllEntries())
	last := hook.LastEntry()
	assert.Equal(t, "request completed", last.Message)
	assert.Equal(t, gotRequestID, last.Data["request_id"])
	assert.Equal(t, http.StatusOK, last.Data["status"])
}

func TestClient_Do_ErrorStatus(t *testing.T) {
	server := testutil.NewQueryEchoServer(t)

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	body, err := c.Do(context.Background(), NewRequest("/marketdata"+testutil.MissingPath))
	require.Error(t, err)
	assert.Nil(t, body)
	assert.True(t, errors.Is(err, core.ErrUnexpectedStatus))

	var protoErr *core.ProtocolError
	require.True(t, errors.As(err, &protoErr))
	assert.Equal(t, http.StatusNotFound, protoErr.Code)
	assert.Equal(t, "GET /marketdata/missing", protoErr.Operation)
	assert.Contains(t, protoErr.Body, "not found")
}

func TestClient_Do_NilRequest(t *testing.T) {
	c, err := New(Config{BaseURL: "http://localhost:8080"})
	require.NoError(t, err)

	_, err = c.Do(context.Background(), nil)
	var configErr *core.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "request", configErr.Field)
}

func TestClient_Do_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Do(ctx, NewRequest("/slow"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_DoAll(t *testing.T) {
	var inFlight, peak int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		_, _ = w.Write([]byte(r.URL.Query().Get("symbol")))
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL, MaxConcurrency: 2})
	require.NoError(t, err)

	symbols := []string{"SPY", "QQQ", "IWM", "DIA", "TLT"}
	reqs := make([]*Request, len(symbols))
	for i, s := range symbols {
		reqs[i] = NewRequest("/quotes").Set("symbol", s)
	}

	results, err := c.DoAll(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(symbols))
	for i, s := range symbols {
		assert.Equal(t, s, string(results[i]))
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestClient_DoAll_FirstErrorWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/bad") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	results, err := c.DoAll(context.Background(), []*Request{NewRequest("/good"), NewRequest("/bad")})
	require.Error(t, err)
	assert.Nil(t, results)

	var protoErr *core.ProtocolError
	require.True(t, errors.As(err, &protoErr))
	assert.Equal(t, http.StatusInternalServerError, protoErr.Code)
}

func TestClient_DoAll_Empty(t *testing.T) {
	c, err := New(Config{BaseURL: "http://localhost:8080"})
	require.NoError(t, err)

	results, err := c.DoAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_Close(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:8080"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	err = client.Close()
	if err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	_, err := New(Config{BaseURL: ""})
	if err == nil {
		t.Fatal("Expected error for empty BaseURL")
	}

	var configErr *core.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("Expected ConfigError, got %T", err)
	}

	unwrapped := configErr.Unwrap()
	if unwrapped == nil {
		t.Error("ConfigError.Unwrap() should return underlying error")
	}

	errMsg := configErr.Error()
	if !strings.Contains(errMsg, "BaseURL") {
		t.Errorf("Error message should contain field name, got: %v", errMsg)
	}
}

func TestNew_RejectsBaseQuery(t *testing.T) {
	c, err := New(Config{BaseURL: "https://api.example.com/v1?apikey=K"})
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}
