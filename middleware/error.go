package middleware

import (
	"errors"
	"net/http"

	"github.com/BerniceZTT/sales_dashboard/service"
	"github.com/BerniceZTT/sales_dashboard/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 将处理器通过 c.Error 记录的错误转换为统一的错误响应
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// 处理器已写出响应，不重复处理
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		utils.HandleError(c, classify(c.Errors.Last().Err))
	}
}

// classify 为看板领域错误附加HTTP状态
func classify(err error) error {
	var apiErr *utils.ApiError
	switch {
	case errors.As(err, &apiErr):
		return err
	case errors.Is(err, service.ErrUnknownRepresentative):
		return utils.WrapApiError(err, http.StatusNotFound, "RESOURCE_NOT_FOUND")
	case errors.Is(err, service.ErrInvalidEvent):
		return utils.WrapApiError(err, http.StatusBadRequest, "BAD_REQUEST")
	}
	return err
}
