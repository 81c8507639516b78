package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	out    string
	err    error
	block  bool
	prompt string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.out, s.err
}

var sample = Request{
	Title:       "Senior Backend Engineer",
	CompanyName: "TechCorp Inc",
	TechStack:   []string{"Go", "PostgreSQL", "Redis", "Kubernetes"},
}

func TestTemplate(t *testing.T) {
	out := Template(sample)

	assert.True(t, strings.HasPrefix(out, "Join our team at TechCorp Inc as a Senior Backend Engineer!"))
	assert.Contains(t, out, "modern tech stack including Go, PostgreSQL, Redis, Kubernetes.")
	assert.Contains(t, out, "• Strong experience with Go, PostgreSQL, Redis\n")
	assert.True(t, strings.HasSuffix(out, "We'd love to hear from you!"))
}

func TestTemplate_ShortStack(t *testing.T) {
	out := Template(Request{Title: "Dev", CompanyName: "Acme", TechStack: []string{"Rust"}})
	assert.Contains(t, out, "• Strong experience with Rust\n")
}

func TestPrompt(t *testing.T) {
	p := Prompt(sample)
	assert.Contains(t, p, "Title: Senior Backend Engineer\n")
	assert.Contains(t, p, "Company: TechCorp Inc\n")
	assert.Contains(t, p, "Tech Stack: Go, PostgreSQL, Redis, Kubernetes\n")
}

func TestGenerator_Describe(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
		want     string
	}{
		{name: "provider text is trimmed", provider: &stubProvider{out: "  Generated text.\n"}, want: "Generated text."},
		{name: "error falls back", provider: &stubProvider{err: errors.New("boom")}, want: Template(sample)},
		{name: "empty falls back", provider: &stubProvider{out: "   "}, want: Template(sample)},
		{name: "timeout falls back", provider: &stubProvider{block: true}, want: Template(sample)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.provider, 20*time.Millisecond, nil)
			assert.Equal(t, tt.want, g.Describe(context.Background(), sample))
			assert.Equal(t, Prompt(sample), tt.provider.prompt)
		})
	}
}

func TestGenerator_NilProviderUsesTemplate(t *testing.T) {
	g := NewGenerator(nil, 0, nil)
	assert.Equal(t, Template(sample), g.Describe(context.Background(), sample))
}

func TestNewOpenAI_RequiresKey(t *testing.T) {
	_, err := NewOpenAI("  ", "")
	assert.ErrorIs(t, err, ErrAPIKeyNotSet)

	p, err := NewOpenAI("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultOpenAIModel, p.Model())
}

func TestOpenAI_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "A great role."}}]
		}`))
	}))
	defer srv.Close()

	p, err := NewOpenAI("sk-test", "", option.WithBaseURL(srv.URL+"/v1/"), option.WithMaxRetries(0))
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "A great role.", out)
	assert.Equal(t, "gpt-3.5-turbo", got["model"])
	assert.EqualValues(t, 500, got["max_tokens"])
	assert.InDelta(t, 0.7, got["temperature"], 1e-9)
}

func TestOpenAI_ServerErrorFallsBackInGenerator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream down","type":"server_error"}}`))
	}))
	defer srv.Close()

	p, err := NewOpenAI("sk-test", "", option.WithBaseURL(srv.URL+"/v1/"), option.WithMaxRetries(0))
	require.NoError(t, err)

	g := NewGenerator(p, time.Second, nil)
	assert.Equal(t, Template(sample), g.Describe(context.Background(), sample))
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "", "")
	assert.ErrorIs(t, err, ErrAPIKeyNotSet)
}
