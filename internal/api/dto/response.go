package dto

// ErrorResponse 错误返回体，code 与 HTTP 状态码一致
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type HealthDTO struct {
	Status string `json:"status"`
}
