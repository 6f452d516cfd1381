package service

import (
	"Todak/internal/api/dto"
	"Todak/internal/model"
	"Todak/internal/pkg/emotion"
	"Todak/internal/pkg/llm"
	"Todak/internal/pkg/util"
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"
)

const (
	spotifySearchURL = "https://open.spotify.com/search/"
	youtubeSearchURL = "https://www.youtube.com/results?search_query="
)

type ReflectionService interface {
	Reflect(ctx context.Context, req *dto.ReflectionDTO) (*dto.ReflectionResultDTO, error)
}

type ReflectionServiceImpl struct {
	companion llm.Companion
}

func NewReflectionService(companion llm.Companion) ReflectionService {
	return &ReflectionServiceImpl{companion: companion}
}

// Reflect 共情回复与推荐并发生成，两者都不会失败
func (s *ReflectionServiceImpl) Reflect(ctx context.Context, req *dto.ReflectionDTO) (*dto.ReflectionResultDTO, error) {
	if err := ValidateEmotionIDs(req.EmotionIDs); err != nil {
		return nil, err
	}
	content, err := ValidateContent(req.Content)
	if err != nil {
		return nil, err
	}

	var (
		message string
		media   llm.MediaRecommendations
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		message = s.companion.EmpathyMessage(gctx, req.EmotionIDs, content)
		return nil
	})
	g.Go(func() error {
		media = s.companion.MediaRecommendations(gctx, emotion.Labels(req.EmotionIDs), content)
		return nil
	})
	_ = g.Wait()

	return &dto.ReflectionResultDTO{
		AIMessage:       message,
		Recommendations: BuildRecommendations(media),
	}, nil
}

// BuildRecommendations 音乐链接到 Spotify 搜索，视频链接到 YouTube 搜索，活动没有链接
func BuildRecommendations(media llm.MediaRecommendations) []dto.RecommendationDTO {
	return []dto.RecommendationDTO{
		{
			Type:        model.RecTypeMusic,
			Key:         "gen-music",
			Title:       media.Music.Title,
			Description: media.Music.Reason,
			Link:        util.PtrString(spotifySearchURL + url.PathEscape(media.Music.SearchQuery)),
		},
		{
			Type:        model.RecTypeVideo,
			Key:         "gen-video",
			Title:       media.Video.Title,
			Description: media.Video.Reason,
			Link:        util.PtrString(youtubeSearchURL + url.QueryEscape(media.Video.SearchQuery)),
		},
		{
			Type:        model.RecTypeActivity,
			Key:         "gen-activity",
			Title:       media.Activity.Title,
			Description: media.Activity.Reason,
		},
	}
}
