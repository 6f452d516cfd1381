package client

import (
	"Todak/internal/api/dto"
	"context"
	"net/http"
)

func (c *Client) GetReview(ctx context.Context, periodType, periodKey string) (*dto.ReviewDTO, error) {
	_, query, err := c.userQuery()
	if err != nil {
		return nil, err
	}
	query["periodType"] = periodType
	query["periodKey"] = periodKey
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.ReviewResponseDTO{}
	if err = c.execute(req.SetQueryParams(query).SetResult(out), http.MethodGet, "/reviews"); err != nil {
		return nil, err
	}
	return out.Review, nil
}

func (c *Client) PutReview(ctx context.Context, periodType, periodKey, content string, lastMoodTimestamp int64) (*dto.ReviewDTO, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return nil, err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.ReviewResponseDTO{}
	body := &dto.PutReviewDTO{
		UserID:            userID,
		PeriodType:        periodType,
		PeriodKey:         periodKey,
		Content:           content,
		LastMoodTimestamp: lastMoodTimestamp,
	}
	if err = c.execute(req.SetBody(body).SetResult(out), http.MethodPost, "/reviews"); err != nil {
		return nil, err
	}
	return out.Review, nil
}

// ResolveReview date 所在周期的回顾，是否重新生成由服务端决定
func (c *Client) ResolveReview(ctx context.Context, periodType, date string) (*dto.ReviewDTO, error) {
	body, err := c.periodQuery(periodType, date)
	if err != nil {
		return nil, err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.ReviewResponseDTO{}
	if err = c.execute(req.SetBody(body).SetResult(out), http.MethodPost, "/reviews/resolve"); err != nil {
		return nil, err
	}
	return out.Review, nil
}

func (c *Client) GenerateReview(ctx context.Context, periodType, date string) (*dto.AIReviewResultDTO, error) {
	body, err := c.periodQuery(periodType, date)
	if err != nil {
		return nil, err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.AIReviewResultDTO{}
	if err = c.execute(req.SetBody(body).SetResult(out), http.MethodPost, "/ai/review"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Report(ctx context.Context, periodType, date string) (*dto.ReportDTO, error) {
	_, query, err := c.userQuery()
	if err != nil {
		return nil, err
	}
	query["periodType"] = periodType
	query["date"] = date
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.ReportDTO{}
	if err = c.execute(req.SetQueryParams(query).SetResult(out), http.MethodGet, "/report"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Emotions(ctx context.Context) ([]dto.EmotionDTO, error) {
	req, _ := c.request(ctx, false)
	out := make([]dto.EmotionDTO, 0)
	if err := c.execute(req.SetResult(&out), http.MethodGet, "/emotions"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) periodQuery(periodType, date string) (*dto.PeriodQueryDTO, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return nil, err
	}
	return &dto.PeriodQueryDTO{UserID: userID, PeriodType: periodType, Date: date}, nil
}
