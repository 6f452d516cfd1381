package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("요청 값이 올바르지 않아요.")
	ErrEmotionRequired    = errors.New("감정을 하나 이상 선택해주세요.")
	ErrEmotionTooMany     = errors.New("감정은 최대 3개까지 선택할 수 있어요.")
	ErrEmotionDuplicate   = errors.New("같은 감정을 중복해서 선택할 수 없어요.")
	ErrEmotionUnknown     = errors.New("알 수 없는 감정이에요.")
	ErrContentRequired    = errors.New("오늘의 이야기를 적어주세요.")
	ErrDateInvalid        = errors.New("날짜 형식이 올바르지 않아요.")
	ErrTimeInvalid        = errors.New("시간 형식이 올바르지 않아요.")
	ErrPeriodInvalid      = errors.New("기간 유형이 올바르지 않아요.")
	ErrRecommendationType = errors.New("추천 유형이 올바르지 않아요.")
	ErrMissingCredentials = errors.New("아이디와 비밀번호를 입력해주세요.")
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 일치하지 않아요.")
	ErrTokenInvalid       = errors.New("로그인이 필요해요.")
	ErrLoginIDExist       = errors.New("이미 사용 중인 아이디예요.")
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없어요.")
	ErrMoodNotFound       = errors.New("기록을 찾을 수 없어요.")
	ErrMoodNotEditable    = errors.New("오늘의 기록만 수정할 수 있어요.")
	ErrForbidden          = errors.New("접근 권한이 없어요.")
	UnExpectedError       = errors.New("잠시 후 다시 시도해주세요.")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrEmotionRequired:    BadRequest,
	ErrEmotionTooMany:     BadRequest,
	ErrEmotionDuplicate:   BadRequest,
	ErrEmotionUnknown:     BadRequest,
	ErrContentRequired:    BadRequest,
	ErrDateInvalid:        BadRequest,
	ErrTimeInvalid:        BadRequest,
	ErrPeriodInvalid:      BadRequest,
	ErrRecommendationType: BadRequest,
	ErrMissingCredentials: BadRequest,
	ErrInvalidCredentials: Unauthorized,
	ErrTokenInvalid:       Unauthorized,
	ErrLoginIDExist:       Conflict,
	ErrUserNotFound:       NotFound,
	ErrMoodNotFound:       NotFound,
	ErrMoodNotEditable:    Forbidden,
	ErrForbidden:          Forbidden,
	UnExpectedError:       InternalServerError,
}
