package api

import (
	"Todak/internal/api/dto"
	"Todak/internal/api/handler"
	"Todak/internal/api/middleware"
	"Todak/internal/pkg/redis"
	"Todak/internal/pkg/security"
	"Todak/internal/pkg/testutil"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"Todak/internal/service"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	store  repository.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore(testutil.DB(t))
	loc := util.LoadLocation("Asia/Seoul")
	clock := &util.FixedClock{At: time.Date(2024, 5, 15, 21, 0, 0, 0, loc)}
	tokens := security.NewTokenIssuer("test-secret", "Todak", time.Hour)
	cache := redis.NewCache(nil, 0)
	companion := testutil.NewStubCompanion()

	reviewSvc := service.NewReviewService(store.Reviews(), store.Moods(), companion, clock)
	reportSvc := service.NewReportService(store.Moods(), clock)
	group := &HandlersGroup{
		UserHandler:     handler.NewUserHandler(service.NewUserService(store.Users(), tokens, cache, clock)),
		MoodHandler:     handler.NewMoodHandler(service.NewMoodService(store.Moods(), cache, clock)),
		ReminderHandler: handler.NewReminderHandler(service.NewReminderService(store.Reminders(), store.Users())),
		ReviewHandler:   handler.NewReviewHandler(reviewSvc),
		AIHandler:       handler.NewAIHandler(service.NewReflectionService(companion), reviewSvc),
		ReportHandler:   handler.NewReportHandler(reportSvc),
		SystemHandler:   handler.NewSystemHandler(store),
	}
	return &testServer{
		router: SetupRouter(group, middleware.AuthMiddleware(tokens, cache), "test"),
		store:  store,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) signup(t *testing.T, loginID string) dto.AuthDTO {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/signup", "", map[string]string{
		"loginId": loginID, "password": "pw123", "nickname": "Al",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var auth dto.AuthDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	return auth
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

type brokenPinger struct{}

func (brokenPinger) Ping(context.Context) error { return errors.New("db down") }

func TestHealthFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", handler.NewSystemHandler(brokenPinger{}).Health)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, service.UnExpectedError.Error(), decodeError(t, w).Message)
}

func TestSignupLoginFlow(t *testing.T) {
	s := newTestServer(t)
	auth := s.signup(t, "alice")
	assert.Equal(t, "alice", auth.User.LoginID)

	w := s.do(t, http.MethodPost, "/api/signup", "", map[string]string{"loginId": "alice", "password": "x", "nickname": "y"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 409, decodeError(t, w).Code)

	w = s.do(t, http.MethodPost, "/api/signup", "", map[string]string{"loginId": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/signup", "", `{"loginId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/login", "", map[string]string{"loginId": "alice", "password": "pw123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	w = s.do(t, http.MethodPost, "/api/login", "", map[string]string{"loginId": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = s.do(t, http.MethodPost, "/api/login", "", map[string]string{"loginId": "ghost", "password": "pw123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = s.do(t, http.MethodPost, "/api/login", "", map[string]string{"loginId": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/check-id?loginId=alice", "", nil)
	assert.JSONEq(t, `{"available":false}`, w.Body.String())
	w = s.do(t, http.MethodGet, "/api/check-id?loginId=bob", "", nil)
	assert.JSONEq(t, `{"available":true}`, w.Body.String())
	w = s.do(t, http.MethodGet, "/api/check-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/logout", auth.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/moods?userId=1", "/api/reminder?userId=1", "/api/report?userId=1&periodType=weekly&date=2024-05-15"} {
		w := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := s.do(t, http.MethodPost, "/api/ai/reflection", "", map[string]any{"emotionIds": []string{"sad"}, "content": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMoodEndpoints(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")
	path := fmt.Sprintf("/api/moods?userId=%d", alice.User.ID)

	save := map[string]any{
		"userId": alice.User.ID, "date": "2024-05-15",
		"emotionIds": []string{"happy", "proud"}, "content": "오늘은 좋은 날",
	}
	w := s.do(t, http.MethodPost, "/api/moods", alice.Token, save)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rec dto.MoodRecordDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, []string{"happy", "proud"}, rec.EmotionIDs)

	w = s.do(t, http.MethodGet, path, alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.MoodRecordDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2024-05-15", list[0].Date)

	// bob 的 token 不能读写 alice 的数据
	w = s.do(t, http.MethodGet, path, bob.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = s.do(t, http.MethodPost, "/api/moods", bob.Token, save)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/moods/%d", rec.ID), bob.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	save["emotionIds"] = []string{}
	w = s.do(t, http.MethodPost, "/api/moods", alice.Token, save)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.ErrEmotionRequired.Error(), decodeError(t, w).Message)

	save["emotionIds"] = []string{"happy"}
	save["date"] = "2024-05-14"
	w = s.do(t, http.MethodPost, "/api/moods", alice.Token, save)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, service.ErrMoodNotEditable.Error(), decodeError(t, w).Message)

	save["date"] = "15/05/2024"
	w = s.do(t, http.MethodPost, "/api/moods", alice.Token, save)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/moods/abc", alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/moods/%d", rec.ID), alice.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/moods/%d", rec.ID), alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReminderEndpoints(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup(t, "alice")
	path := fmt.Sprintf("/api/reminder?userId=%d", alice.User.ID)

	w := s.do(t, http.MethodGet, path, alice.Token, nil)
	assert.JSONEq(t, `{"reminderTime":null}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/reminder", alice.Token, map[string]any{"userId": alice.User.ID, "reminderTime": "21:30"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reminderTime":"21:30"}`, w.Body.String())

	w = s.do(t, http.MethodGet, path, alice.Token, nil)
	assert.JSONEq(t, `{"reminderTime":"21:30"}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/reminder", alice.Token, map[string]any{"userId": alice.User.ID, "reminderTime": "9pm"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, path, alice.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodGet, path, alice.Token, nil)
	assert.JSONEq(t, `{"reminderTime":null}`, w.Body.String())
}

func TestReviewEndpoints(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup(t, "alice")
	id := alice.User.ID

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/reviews?userId=%d&periodType=weekly&periodKey=2024-05-12", id), alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"review":null}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/reviews", alice.Token, map[string]any{
		"userId": id, "periodType": "weekly", "periodKey": "2024-05-12", "content": "좋은 한 주", "lastMoodTimestamp": 10,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/reviews?userId=%d&periodType=weekly&periodKey=2024-05-12", id), alice.Token, nil)
	var got dto.ReviewResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Review)
	assert.Equal(t, "좋은 한 주", got.Review.Content)

	w = s.do(t, http.MethodPost, "/api/reviews", alice.Token, map[string]any{
		"userId": id, "periodType": "yearly", "periodKey": "2024", "content": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/moods", alice.Token, map[string]any{
		"userId": id, "date": "2024-05-15", "emotionIds": []string{"calm"}, "content": "평범한 하루",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 有更新的记录，缓存的回顾会被重新生成
	w = s.do(t, http.MethodPost, "/api/reviews/resolve", alice.Token, map[string]any{"userId": id, "periodType": "weekly", "date": "2024-05-15"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "한 주 동안 수고했어.", got.Review.Content)
	assert.Equal(t, "2024-05-12", got.Review.PeriodKey)

	w = s.do(t, http.MethodPost, "/api/ai/review", alice.Token, map[string]any{"userId": id, "periodType": "monthly", "date": "2024-05-15"})
	require.Equal(t, http.StatusOK, w.Code)
	var generated dto.AIReviewResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generated))
	assert.Equal(t, "2024-05", generated.PeriodKey)
	assert.NotEmpty(t, generated.Content)
}

func TestReflectionAndReport(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup(t, "alice")

	w := s.do(t, http.MethodPost, "/api/ai/reflection", alice.Token, map[string]any{"emotionIds": []string{"sad"}, "content": "비가 왔어"})
	require.Equal(t, http.StatusOK, w.Code)
	var out dto.ReflectionResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out.AIMessage)
	assert.Len(t, out.Recommendations, 3)

	w = s.do(t, http.MethodPost, "/api/ai/reflection", alice.Token, map[string]any{"emotionIds": []string{"sad", "sad"}, "content": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/moods", alice.Token, map[string]any{
		"userId": alice.User.ID, "date": "2024-05-15", "emotionIds": []string{"happy"}, "content": "x",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/report?userId=%d&periodType=weekly&date=2024-05-15", alice.User.ID), alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report dto.ReportDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Len(t, report.Days, 7)
	assert.Equal(t, 1, report.Streak)
	assert.Equal(t, "happy", report.Palette[0].ID)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/report?userId=%d&periodType=daily&date=2024-05-15", alice.User.ID), alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/emotions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var emotions []dto.EmotionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &emotions))
	assert.Len(t, emotions, 12)
}

func TestGuideAndDeleteAccount(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")
	id := alice.User.ID

	w := s.do(t, http.MethodPatch, fmt.Sprintf("/api/users/%d/guide", id), alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasSeenGuide":true`)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), bob.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/api/moods", alice.Token, map[string]any{
		"userId": id, "date": "2024-05-15", "emotionIds": []string{"happy"}, "content": "x",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), alice.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	moods, err := s.store.Moods().ListMoods(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, moods)

	w = s.do(t, http.MethodPost, "/api/login", "", map[string]string{"loginId": "alice", "password": "pw123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
