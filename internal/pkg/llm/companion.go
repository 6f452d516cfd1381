package llm

import (
	"Todak/internal/pkg/emotion"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/semaphore"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

const defaultTimeout = 15 * time.Second

type MediaItem struct {
	SearchQuery string `json:"searchQuery"`
	Title       string `json:"title"`
	Reason      string `json:"reason"`
}

func (m MediaItem) valid() bool {
	return strings.TrimSpace(m.SearchQuery) != "" &&
		strings.TrimSpace(m.Title) != "" &&
		strings.TrimSpace(m.Reason) != ""
}

type MediaRecommendations struct {
	Music    MediaItem `json:"music"`
	Video    MediaItem `json:"video"`
	Activity MediaItem `json:"activity"`
}

// ReviewEntry 回顾 prompt 中的一天
type ReviewEntry struct {
	Date       string
	EmotionIDs []string
	Content    string
}

// Companion 所有方法都不返回错误，失败时给出兜底内容
type Companion interface {
	EmpathyMessage(ctx context.Context, emotionIDs []string, content string) string
	MediaRecommendations(ctx context.Context, emotionLabels []string, content string) MediaRecommendations
	PeriodReview(ctx context.Context, entries []ReviewEntry, periodType string) string
}

type Options struct {
	Timeout        time.Duration
	MaxConcurrency int64
	Temperature    float64
}

type CompanionImpl struct {
	provider    Provider
	sem         *semaphore.Weighted
	timeout     time.Duration
	temperature float64
}

func NewCompanion(provider Provider, opts Options) *CompanionImpl {
	if provider == nil {
		provider = NopProvider{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	return &CompanionImpl{
		provider:    provider,
		sem:         newTextSem(opts.MaxConcurrency),
		timeout:     opts.Timeout,
		temperature: opts.Temperature,
	}
}

func (s *CompanionImpl) ProviderName() string {
	return s.provider.Name()
}

// fetch 含排队时间在内都受 timeout 约束
func (s *CompanionImpl) fetch(ctx context.Context, req Request) (string, error) {
	if _, ok := s.provider.(NopProvider); ok {
		return "", ErrNoProvider
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.sem.Release(1)

	log.InfoContext(ctx, "正在请求AI大模型", "provider", s.provider.Name())
	start := time.Now()
	text, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	log.InfoContext(ctx, "AI大模型请求成功", "latency", time.Since(start))
	return text, nil
}

func (s *CompanionImpl) EmpathyMessage(ctx context.Context, emotionIDs []string, content string) string {
	prompt := fmt.Sprintf("INPUT EMOTIONS (user-selected labels): %q\nINPUT DIARY TEXT: %q",
		strings.Join(emotion.Labels(emotionIDs), ", "), content)

	text, err := s.fetch(ctx, Request{
		System:      empathyPrompt,
		Prompt:      prompt,
		Temperature: s.temperature,
	})
	if err != nil {
		logFallback(ctx, "empathy", err)
		return EmpathyFallback(emotionIDs, content)
	}
	return text
}

func (s *CompanionImpl) MediaRecommendations(ctx context.Context, emotionLabels []string, content string) MediaRecommendations {
	prompt := fmt.Sprintf("The user is feeling: %q\nJournal content: %q",
		strings.Join(emotionLabels, ", "), content)

	text, err := s.fetch(ctx, Request{
		System:      mediaPrompt,
		Prompt:      prompt,
		Temperature: s.temperature,
		JSON:        true,
		Schema:      mediaSchema(),
	})
	if err != nil {
		logFallback(ctx, "media", err)
		return MediaFallback()
	}

	recs, err := ParseMediaRecommendations(text)
	if err != nil {
		logFallback(ctx, "media", err)
	}
	return recs
}

func (s *CompanionImpl) PeriodReview(ctx context.Context, entries []ReviewEntry, periodType string) string {
	if len(entries) == 0 {
		return ReviewFallback(periodType, false)
	}

	system := weeklyReviewPrompt
	if periodType == PeriodMonthly {
		system = monthlyReviewPrompt
	}

	var sb strings.Builder
	sb.WriteString("Entries:\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("- %s: %s (%s)\n", e.Date, strings.Join(emotion.Labels(e.EmotionIDs), ", "), e.Content))
	}

	text, err := s.fetch(ctx, Request{
		System:      system,
		Prompt:      sb.String(),
		Temperature: s.temperature,
	})
	if err != nil {
		logFallback(ctx, "review", err)
		return ReviewFallback(periodType, true)
	}
	return text
}

// ParseMediaRecommendations 解析失败时整体兜底，单项缺字段时只替换该项
func ParseMediaRecommendations(text string) (MediaRecommendations, error) {
	fallback := MediaFallback()

	var recs MediaRecommendations
	if err := json.Unmarshal([]byte(cleanJSON(text)), &recs); err != nil {
		return fallback, err
	}

	var invalid []string
	if !recs.Music.valid() {
		recs.Music = fallback.Music
		invalid = append(invalid, "music")
	}
	if !recs.Video.valid() {
		recs.Video = fallback.Video
		invalid = append(invalid, "video")
	}
	if !recs.Activity.valid() {
		recs.Activity = fallback.Activity
		invalid = append(invalid, "activity")
	}
	if len(invalid) > 0 {
		return recs, fmt.Errorf("invalid media items: %s", strings.Join(invalid, ","))
	}
	return recs, nil
}

func logFallback(ctx context.Context, op string, err error) {
	if errors.Is(err, ErrNoProvider) {
		return
	}
	log.WarnContext(ctx, "AI大模型请求失败，使用兜底内容", "op", op, "err", err)
}

func mediaSchema() map[string]any {
	item := func(queryDesc string) map[string]any {
		return map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"searchQuery": map[string]any{"type": "STRING", "description": queryDesc},
				"title":       map[string]any{"type": "STRING", "description": "Display title"},
				"reason":      map[string]any{"type": "STRING", "description": "Short, warm reason why this fits (1 sentence)"},
			},
			"required": []string{"searchQuery", "title", "reason"},
		}
	}
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"music":    item("Artist and Song Title for Spotify search query"),
			"video":    item("Keywords for YouTube search query"),
			"activity": item("Keywords describing the activity"),
		},
		"required": []string{"music", "video", "activity"},
	}
}
