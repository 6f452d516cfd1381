package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 返回 validator.ValidationErrors，由 response.Error 统一映射为 400
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return vErrs
		}
		return err
	}
	return nil
}

// FirstFieldError 便于日志输出
func FirstFieldError(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]", vErrs[0].Field(), vErrs[0].Tag())
	}
	return ""
}
