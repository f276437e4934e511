package parser

import (
	"context"
	"io"
	"strings"
	"sync"

	"feedreader-api/core/interfaces"
)

// mockFetcher is a mock implementation of the Fetcher interface
type mockFetcher struct {
	mu        sync.Mutex
	calls     int
	fetchFunc func(ctx context.Context, url string) (*Payload, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*Payload, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, nil
}

func staticFetcher(body string) *mockFetcher {
	return &mockFetcher{
		fetchFunc: func(_ context.Context, url string) (*Payload, error) {
			return &Payload{URL: url, Body: body, StatusCode: 200}, nil
		},
	}
}

// mockStrategy is a mock implementation of the Strategy interface
type mockStrategy struct {
	name      string
	calls     int
	parseFunc func(ctx context.Context, in *Input) Result
}

func (m *mockStrategy) Name() string { return m.name }

func (m *mockStrategy) Parse(ctx context.Context, in *Input) Result {
	m.calls++
	return m.parseFunc(ctx, in)
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }
