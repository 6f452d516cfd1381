package service

import (
	"Todak/internal/api/dto"
	"Todak/internal/model"
	"Todak/internal/pkg/consts"
	"Todak/internal/pkg/redis"
	"Todak/internal/pkg/security"
	"Todak/internal/pkg/util"
	"Todak/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Signup(ctx context.Context, req *dto.SignupDTO) (*dto.AuthDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthDTO, error)
	Logout(ctx context.Context, token string, claims *security.UserClaims) error
	CheckLoginID(ctx context.Context, loginID string) (bool, error)
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	MarkGuideSeen(ctx context.Context, id uint64) (*dto.UserDTO, error)
	DeleteAccount(ctx context.Context, id uint64, token string, claims *security.UserClaims) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	tokens   *security.TokenIssuer
	cache    *redis.Cache
	clock    util.Clock
}

func NewUserService(userRepo repository.UserRepo, tokens *security.TokenIssuer, cache *redis.Cache, clock util.Clock) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		cache:    cache,
		clock:    clock,
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, req *dto.SignupDTO) (*dto.AuthDTO, error) {
	loginID := strings.TrimSpace(req.LoginID)
	nickname := strings.TrimSpace(req.Nickname)
	if loginID == "" || req.Password == "" || nickname == "" {
		return nil, ErrParamInvalid
	}

	exists, err := s.userRepo.ExistsLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLoginIDExist
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 只保留日历日期，按 UTC 零点存储，读回后格式化不受驱动时区影响
	now := s.clock.Now()
	user := &model.User{
		LoginID:      loginID,
		PasswordHash: passwordHash,
		Nickname:     nickname,
		StartDate:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册绕过了预检查，由唯一索引兜底
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrLoginIDExist
		}
		return nil, err
	}

	log.InfoContext(ctx, "user signup", "user_id", user.ID)
	return s.issue(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthDTO, error) {
	loginID := strings.TrimSpace(req.LoginID)
	if loginID == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetUserByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string, claims *security.UserClaims) error {
	return s.revoke(ctx, token, claims)
}

func (s *UserServiceImpl) CheckLoginID(ctx context.Context, loginID string) (bool, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return false, ErrParamInvalid
	}
	exists, err := s.userRepo.ExistsLoginID(ctx, loginID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user)
}

func (s *UserServiceImpl) MarkGuideSeen(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	// 已经是 true 时 MySQL 的 RowsAffected 也是 0，存在与否由 GetUser 判断
	if _, err := s.userRepo.UpdateGuideSeen(ctx, id); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, id)
}

func (s *UserServiceImpl) DeleteAccount(ctx context.Context, id uint64, token string, claims *security.UserClaims) error {
	affected, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err = s.cache.InvalidateMoods(ctx, id); err != nil {
		log.WarnContext(ctx, "invalidate mood cache failed", "err", err)
	}
	if token != "" {
		if err = s.revoke(ctx, token, claims); err != nil {
			log.WarnContext(ctx, "revoke token failed", "err", err)
		}
	}

	log.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

func (s *UserServiceImpl) issue(user *model.User) (*dto.AuthDTO, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.LoginID)
	if err != nil {
		return nil, err
	}
	userDTO, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthDTO{User: userDTO, Token: token}, nil
}

func (s *UserServiceImpl) revoke(ctx context.Context, token string, claims *security.UserClaims) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	return s.cache.RevokeToken(ctx, signature, s.tokens.Remaining(claims))
}

var dateConverter = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		t, ok := src.(time.Time)
		if !ok {
			return "", nil
		}
		return t.Format(consts.DateLayout), nil
	},
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	out := &dto.UserDTO{}
	err := copier.CopyWithOption(out, user, copier.Option{
		Converters: []copier.TypeConverter{dateConverter},
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
