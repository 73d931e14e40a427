package handler

import (
	"sync"

	"test-platform/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators 注册自定义校验规则
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("search_mode", validateSearchMode)
		}
	})
}

// validateSearchMode 匹配模式只能是 AND 或 OR
func validateSearchMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case model.SearchModeAnd, model.SearchModeOr:
		return true
	}
	return false
}
