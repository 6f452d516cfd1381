package client

import (
	"Todak/internal/api/dto"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

var ErrNotLoggedIn = errors.New("not logged in")

// APIError 服务端返回的 {"code","message"}
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todak api %d: %s", e.Status, e.Message)
}

// StatusOf 非 APIError 时返回 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

func WithSession(s *Session) Option {
	return func(c *Client) {
		c.session = s
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc).SetBaseURL(c.http.BaseURL)
	}
}

type Client struct {
	http    *resty.Client
	session *Session
}

// New baseURL 形如 http://localhost:8080/api
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    resty.New().SetBaseURL(baseURL).SetTimeout(20 * time.Second),
		session: NewSession(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) request(ctx context.Context, auth bool) (*resty.Request, error) {
	req := c.http.R().SetContext(ctx).SetError(&dto.ErrorResponse{})
	if auth {
		token := c.session.Current().Token
		if token == "" {
			return nil, ErrNotLoggedIn
		}
		req.SetAuthToken(token)
	}
	return req, nil
}

func (c *Client) execute(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: resp.Status()}
		if body, ok := resp.Error().(*dto.ErrorResponse); ok && body.Message != "" {
			apiErr.Message = body.Message
		}
		return apiErr
	}
	return nil
}

// currentUserID 需要 userId 参数的接口统一取会话中的用户
func (c *Client) currentUserID() (uint64, error) {
	state := c.session.Current()
	if state.Token == "" || state.User == nil {
		return 0, ErrNotLoggedIn
	}
	return state.User.ID, nil
}

func (c *Client) Health(ctx context.Context) error {
	req, _ := c.request(ctx, false)
	return c.execute(req.SetResult(&dto.HealthDTO{}), http.MethodGet, "/health")
}

func (c *Client) Signup(ctx context.Context, loginID, password, nickname string) (*dto.UserDTO, error) {
	return c.authenticate(ctx, "/signup", &dto.SignupDTO{LoginID: loginID, Password: password, Nickname: nickname})
}

func (c *Client) Login(ctx context.Context, loginID, password string) (*dto.UserDTO, error) {
	return c.authenticate(ctx, "/login", &dto.LoginDTO{LoginID: loginID, Password: password})
}

// authenticate 成功后写入会话
func (c *Client) authenticate(ctx context.Context, path string, body any) (*dto.UserDTO, error) {
	req, _ := c.request(ctx, false)
	out := &dto.AuthDTO{}
	if err := c.execute(req.SetBody(body).SetResult(out), http.MethodPost, path); err != nil {
		return nil, err
	}
	if err := c.session.Save(State{User: out.User, Token: out.Token}); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Logout 服务端失败也会清掉本地会话
func (c *Client) Logout(ctx context.Context) error {
	req, err := c.request(ctx, true)
	if err != nil {
		return err
	}
	apiErr := c.execute(req, http.MethodPost, "/logout")
	if err = c.session.Clear(); err != nil {
		return err
	}
	return apiErr
}

func (c *Client) CheckLoginID(ctx context.Context, loginID string) (bool, error) {
	req, _ := c.request(ctx, false)
	out := &dto.CheckIDDTO{}
	if err := c.execute(req.SetQueryParam("loginId", loginID).SetResult(out), http.MethodGet, "/check-id"); err != nil {
		return false, err
	}
	return out.Available, nil
}

func (c *Client) MarkGuideSeen(ctx context.Context) (*dto.UserDTO, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return nil, err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	out := &dto.UserDTO{}
	if err = c.execute(req.SetResult(out), http.MethodPatch, "/users/"+strconv.FormatUint(userID, 10)+"/guide"); err != nil {
		return nil, err
	}
	state := c.session.Current()
	state.User = out
	return out, c.session.Save(state)
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	userID, err := c.currentUserID()
	if err != nil {
		return err
	}
	req, err := c.request(ctx, true)
	if err != nil {
		return err
	}
	if err = c.execute(req, http.MethodDelete, "/users/"+strconv.FormatUint(userID, 10)); err != nil {
		return err
	}
	return c.session.Clear()
}
