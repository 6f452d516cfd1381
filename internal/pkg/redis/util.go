package redis

import (
	"Todak/internal/pkg/consts"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 客户端为 nil 时所有操作都是空操作
type Cache struct {
	rdb      *redis.Client
	moodsTTL time.Duration
}

func NewCache(rdb *redis.Client, moodsTTL time.Duration) *Cache {
	if moodsTTL <= 0 {
		moodsTTL = 5 * time.Minute
	}
	return &Cache{rdb: rdb, moodsTTL: moodsTTL}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// SetWithExpiration 设置键值对并设置过期时间
func (c *Cache) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 不存在时返回空字符串
func (c *Cache) GetValue(ctx context.Context, key string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}
	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// DeleteKey 删除一个键
func (c *Cache) DeleteKey(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}

// TryLock 未启用 Redis 时视为单实例，直接拿到锁
func (c *Cache) TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	if !c.Enabled() {
		return true, nil
	}
	return c.rdb.SetNX(ctx, key, value, expiration).Result()
}

// UnLock 释放锁
func (c *Cache) UnLock(ctx context.Context, key string, value interface{}) {
	if !c.Enabled() {
		return
	}
	c.rdb.Eval(ctx, "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end", []string{key}, value)
}

// RevokeToken 签名加入黑名单直到 Token 过期
func (c *Cache) RevokeToken(ctx context.Context, signature string, ttl time.Duration) error {
	return c.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", ttl)
}

func (c *Cache) IsRevoked(ctx context.Context, signature string) (bool, error) {
	value, err := c.GetValue(ctx, consts.TokenBlacklistKey+signature)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// GetMoods 返回缓存的心情列表 JSON，未命中时 ok 为 false
func (c *Cache) GetMoods(ctx context.Context, userID uint64) ([]byte, bool, error) {
	value, err := c.GetValue(ctx, moodListKey(userID))
	if err != nil || value == "" {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (c *Cache) SetMoods(ctx context.Context, userID uint64, payload []byte) error {
	return c.SetWithExpiration(ctx, moodListKey(userID), payload, c.moodsTTL)
}

func (c *Cache) InvalidateMoods(ctx context.Context, userID uint64) error {
	return c.DeleteKey(ctx, moodListKey(userID))
}

func moodListKey(userID uint64) string {
	return consts.MoodListKey + strconv.FormatUint(userID, 10)
}
