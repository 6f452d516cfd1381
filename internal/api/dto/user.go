package dto

// SignupDTO 注册
type SignupDTO struct {
	LoginID  string `json:"loginId" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
	Nickname string `json:"nickname" validate:"required,max=50"`
}

// LoginDTO 登录
type LoginDTO struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserDTO 对外展示的用户，不含密码
type UserDTO struct {
	ID           uint64 `json:"id"`
	LoginID      string `json:"loginId"`
	Nickname     string `json:"nickname"`
	StartDate    string `json:"startDate"`
	HasSeenGuide bool   `json:"hasSeenGuide"`
}

type AuthDTO struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}

type CheckIDDTO struct {
	Available bool `json:"available"`
}
