package client

import (
	"Todak/internal/api/dto"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

// State 登录后需要跨进程保留的内容
type State struct {
	User  *dto.UserDTO `json:"user"`
	Token string       `json:"token"`
}

// Session 以 JSON 文件持久化的登录状态，path 为空时只存在内存里
type Session struct {
	mu    sync.RWMutex
	path  string
	state State
}

func NewSession(path string) *Session {
	return &Session{path: path}
}

// Load 文件不存在视为未登录
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.state = State{}
		return nil
	}
	if err != nil {
		return err
	}
	var state State
	if err = json.Unmarshal(raw, &state); err != nil {
		return err
	}
	s.state = state
	return nil
}

func (s *Session) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	if s.path == "" {
		return nil
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear 登出或注销后调用
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Session) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) LoggedIn() bool {
	return s.Current().Token != ""
}
