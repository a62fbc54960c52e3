package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError 自定义API错误
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
	Err        error
}

// Error 实现error接口
func (e *ApiError) Error() string {
	return e.Message
}

// Unwrap 返回底层错误
func (e *ApiError) Unwrap() error {
	return e.Err
}

// NewApiError 创建API错误
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError 创建资源不存在错误
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+"不存在", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateBadRequestError 创建错误请求错误
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// WrapApiError 为已知错误附加HTTP状态
func WrapApiError(err error, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    err.Error(),
		ErrorCode:  errorCode,
		Err:        err,
	}
}

// HandleError 处理错误并返回适当的响应
func HandleError(c *gin.Context, err error) {
	if c == nil || err == nil {
		return
	}

	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, "API错误")

	// 处理API错误
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		response := gin.H{"success": false, "error": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.AbortWithStatusJSON(apiErr.StatusCode, response)
		return
	}

	// 其他未预期的错误
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
