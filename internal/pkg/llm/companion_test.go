package llm

import (
	"Todak/internal/api/config"
	"Todak/internal/pkg/emotion"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	text  string
	err   error
	delay time.Duration
	calls atomic.Int32
	last  Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, req Request) (string, error) {
	f.calls.Add(1)
	f.last = req
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func TestEmpathyMessageUsesProvider(t *testing.T) {
	p := &fakeProvider{text: "  오늘 정말 수고했어. 🌿  "}
	c := NewCompanion(p, Options{})

	got := c.EmpathyMessage(context.Background(), []string{emotion.Happy}, "좋은 하루")
	assert.Equal(t, "오늘 정말 수고했어. 🌿", got)
	assert.Contains(t, p.last.Prompt, "행복")
	assert.Contains(t, p.last.Prompt, "좋은 하루")
	assert.False(t, p.last.JSON)
}

func TestEmpathyMessageFallbacks(t *testing.T) {
	cases := map[string]Provider{
		"none":    NopProvider{},
		"error":   &fakeProvider{err: errors.New("boom")},
		"empty":   &fakeProvider{text: "   "},
		"timeout": &fakeProvider{text: "late", delay: time.Second},
	}
	for name, p := range cases {
		c := NewCompanion(p, Options{Timeout: 20 * time.Millisecond})
		got := c.EmpathyMessage(context.Background(), []string{emotion.Sad}, "비가 왔다")
		assert.Equal(t, EmpathyFallback([]string{emotion.Sad}, "비가 왔다"), got, name)
		assert.NotEmpty(t, got, name)
	}
}

func TestEmpathyFallbackByPrimaryEmotion(t *testing.T) {
	long := strings.Repeat("가", 100)
	angry := EmpathyFallback([]string{emotion.Angry, emotion.Sad}, long)
	assert.Contains(t, angry, "분노")
	assert.Contains(t, angry, strings.Repeat("가", 80)+"…")
	assert.NotContains(t, angry, strings.Repeat("가", 81))

	assert.Contains(t, EmpathyFallback([]string{emotion.Happy}, ""), "적어준 순간들")

	generic := EmpathyFallback([]string{emotion.Calm}, "산책")
	assert.Contains(t, generic, `"산책"를 읽었어.`)
	assert.Contains(t, generic, "평온한 감정")

	assert.NotEmpty(t, EmpathyFallback(nil, ""))
}

func TestMediaRecommendations(t *testing.T) {
	payload := "```json\n" + `{"music":{"searchQuery":"IU Through the Night","title":"밤편지 - 아이유","reason":"포근해"},
"video":{"searchQuery":"rain asmr","title":"빗소리","reason":"차분해져"},
"activity":{"searchQuery":"journal","title":"감사 일기","reason":"마음 정리"}}` + "\n```"
	p := &fakeProvider{text: payload}
	c := NewCompanion(p, Options{})

	recs := c.MediaRecommendations(context.Background(), []string{"슬픔"}, "우울했다")
	assert.Equal(t, "밤편지 - 아이유", recs.Music.Title)
	assert.Equal(t, "rain asmr", recs.Video.SearchQuery)
	assert.Equal(t, "감사 일기", recs.Activity.Title)
	assert.True(t, p.last.JSON)
	assert.NotNil(t, p.last.Schema)
}

func TestMediaRecommendationsInvalid(t *testing.T) {
	c := NewCompanion(&fakeProvider{text: "not json"}, Options{})
	assert.Equal(t, MediaFallback(), c.MediaRecommendations(context.Background(), nil, ""))

	partial := `{"music":{"searchQuery":"a","title":"b","reason":"c"},"video":{"title":"only"}}`
	recs, err := ParseMediaRecommendations(partial)
	assert.Error(t, err)
	assert.Equal(t, "b", recs.Music.Title)
	assert.Equal(t, MediaFallback().Video, recs.Video)
	assert.Equal(t, MediaFallback().Activity, recs.Activity)
}

func TestPeriodReview(t *testing.T) {
	p := &fakeProvider{text: "한 주 동안 고생 많았어."}
	c := NewCompanion(p, Options{})

	assert.Equal(t, ReviewFallback(PeriodWeekly, false), c.PeriodReview(context.Background(), nil, PeriodWeekly))
	assert.Equal(t, int32(0), p.calls.Load())

	entries := []ReviewEntry{{Date: "2024-05-12", EmotionIDs: []string{emotion.Happy}, Content: "소풍"}}
	assert.Equal(t, "한 주 동안 고생 많았어.", c.PeriodReview(context.Background(), entries, PeriodWeekly))
	assert.Equal(t, weeklyReviewPrompt, p.last.System)
	assert.Contains(t, p.last.Prompt, "2024-05-12: 행복 (소풍)")

	c.PeriodReview(context.Background(), entries, PeriodMonthly)
	assert.Equal(t, monthlyReviewPrompt, p.last.System)

	failing := NewCompanion(&fakeProvider{err: errors.New("down")}, Options{})
	assert.Equal(t, monthlyFallbackText, failing.PeriodReview(context.Background(), entries, PeriodMonthly))
	assert.Equal(t, monthlyEmptyText, failing.PeriodReview(context.Background(), nil, PeriodMonthly))
}

func TestPromptsEmbedded(t *testing.T) {
	for _, p := range []string{empathyPrompt, mediaPrompt, weeklyReviewPrompt, monthlyReviewPrompt} {
		assert.NotEmpty(t, p)
	}
}

func TestGeminiProvider(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"안녕"},{"text":"!"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider(config.LLMConfig{URL: srv.URL, Model: "gemini-test", ApiKey: "k", TimeoutSeconds: 2})
	text, err := p.Generate(context.Background(), Request{System: "sys", Prompt: "hi", JSON: true, Schema: mediaSchema()})
	require.NoError(t, err)
	assert.Equal(t, "안녕!", text)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMimeType)
	assert.NotNil(t, got.GenerationConfig.ResponseSchema)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "sys", got.SystemInstruction.Parts[0].Text)
}

func TestGeminiProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "bad" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := NewGeminiProvider(config.LLMConfig{URL: srv.URL, ApiKey: "bad"}).Generate(context.Background(), Request{Prompt: "x"})
	assert.Error(t, err)

	_, err = NewGeminiProvider(config.LLMConfig{URL: srv.URL, ApiKey: "ok"}).Generate(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.LLMConfig{Provider: "openai"})
	require.NoError(t, err)
	assert.Equal(t, ProviderNone, p.Name())

	p, err = NewProvider(config.LLMConfig{Provider: "gemini", ApiKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, p.Name())

	p, err = NewProvider(config.LLMConfig{Provider: "openai", ApiKey: "k", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p.Name())

	p, err = NewProvider(config.LLMConfig{Provider: "claude", ApiKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, ProviderNone, p.Name())
}
