package client

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce 输入停止 300ms 后才发起检查
const DefaultDebounce = 300 * time.Millisecond

// IDChecker 只对最后一次输入发请求，旧请求的结果会被丢弃
type IDChecker struct {
	client *Client
	delay  time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	seq    uint64
}

func NewIDChecker(client *Client, delay time.Duration) *IDChecker {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &IDChecker{client: client, delay: delay}
}

// Check fn 在后台 goroutine 中调用，被新输入取代时不会调用
func (s *IDChecker) Check(ctx context.Context, loginID string, fn func(available bool, err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.seq++
	seq := s.seq

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.timer = time.AfterFunc(s.delay, func() {
		available, err := s.client.CheckLoginID(runCtx, loginID)

		s.mu.Lock()
		latest := seq == s.seq
		s.mu.Unlock()
		if latest && runCtx.Err() == nil {
			fn(available, err)
		}
	})
}

// Stop 取消尚未完成的检查
func (s *IDChecker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.seq++
}

func (s *IDChecker) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
	}
}
