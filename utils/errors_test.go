package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/dashboard/view", nil)
	return c, w
}

func TestHandleError(t *testing.T) {
	sentinel := errors.New("unknown representative")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        CreateNotFoundError("销售人员"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"error":"销售人员不存在","code":"RESOURCE_NOT_FOUND"}`,
		},
		{
			name:       "wrapped api error",
			err:        fmt.Errorf("dispatch: %w", CreateBadRequestError("筛选值不能为空")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"筛选值不能为空","code":"BAD_REQUEST"}`,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"boom"}`,
		},
		{
			name:       "wrap keeps cause",
			err:        WrapApiError(sentinel, http.StatusNotFound, "RESOURCE_NOT_FOUND"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"error":"unknown representative","code":"RESOURCE_NOT_FOUND"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			HandleError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}

	assert.ErrorIs(t, WrapApiError(sentinel, http.StatusNotFound, ""), sentinel)
}

func TestSuccessResponse(t *testing.T) {
	c, w := newTestContext()
	SuccessResponse(c, gin.H{"n": 1}, "看板已更新")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"n":1},"message":"看板已更新"}`, w.Body.String())

	c, w = newTestContext()
	SuccessResponse(c, nil, "", http.StatusCreated)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
