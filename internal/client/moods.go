package client

import (
	"Todak/internal/api/dto"
	"context"
	"net/http"
	"strconv"
)

func (c *Client) userQuery() (uint64, map[string]string, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return 0, nil, err
	}
	return userID, map[string]string{"userId": strconv.FormatUint(userID, 10)}, nil
}

func (c *Client) ListMoods(ctx context.Context) ([]dto.MoodRecordDTO, error) {
	_, query, err := c.userQuery()
	if err != nil {
		return nil, err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MoodRecordDTO, 0)
	if err = c.execute(req.SetQueryParams(query).SetResult(&out), http.MethodGet, "/moods"); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveMood req.UserID 为空时使用会话中的用户
func (c *Client) SaveMood(ctx context.Context, req dto.SaveMoodDTO) (*dto.MoodRecordDTO, error) {
	if req.UserID == 0 {
		userID, err := c.currentUserID()
		if err != nil {
			return nil, err
		}
		req.UserID = userID
	}
	r, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.MoodRecordDTO{}
	if err = c.execute(r.SetBody(&req).SetResult(out), http.MethodPost, "/moods"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteMood(ctx context.Context, id uint64) error {
	req, err := c.request(ctx, true)
	if err != nil {
		return err
	}
	return c.execute(req, http.MethodDelete, "/moods/"+strconv.FormatUint(id, 10))
}

// Reflect 保存前生成 AI 回复与推荐
func (c *Client) Reflect(ctx context.Context, emotionIDs []string, content string) (*dto.ReflectionResultDTO, error) {
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.ReflectionResultDTO{}
	body := &dto.ReflectionDTO{EmotionIDs: emotionIDs, Content: content}
	if err = c.execute(req.SetBody(body).SetResult(out), http.MethodPost, "/ai/reflection"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReminder(ctx context.Context) (*string, error) {
	_, query, err := c.userQuery()
	if err != nil {
		return nil, err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.ReminderDTO{}
	if err = c.execute(req.SetQueryParams(query).SetResult(out), http.MethodGet, "/reminder"); err != nil {
		return nil, err
	}
	return out.ReminderTime, nil
}

func (c *Client) SetReminder(ctx context.Context, reminderTime string) (string, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return "", err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return "", err
	}
	out := &dto.ReminderDTO{}
	body := &dto.SetReminderDTO{UserID: userID, ReminderTime: reminderTime}
	if err = c.execute(req.SetBody(body).SetResult(out), http.MethodPost, "/reminder"); err != nil {
		return "", err
	}
	if out.ReminderTime == nil {
		return "", nil
	}
	return *out.ReminderTime, nil
}

func (c *Client) DeleteReminder(ctx context.Context) error {
	_, query, err := c.userQuery()
	if err != nil {
		return err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return err
	}
	return c.execute(req.SetQueryParams(query), http.MethodDelete, "/reminder")
}
