package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestWrite_BizError(t *testing.T) {
	w := serve(func(c *gin.Context) { Write(c, NotFound("用户不存在")) })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, 404, gjson.Get(w.Body.String(), "code").Int())
	assert.Equal(t, "用户不存在", gjson.Get(w.Body.String(), "msg").String())
}

func TestWrite_InternalErrorHidden(t *testing.T) {
	w := serve(func(c *gin.Context) { Write(c, errors.New("SELECT * FROM check_ins failed")) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, InternalMsg, gjson.Get(w.Body.String(), "msg").String())
	assert.NotContains(t, w.Body.String(), "check_ins")
}

func TestErrorMiddleware_Panic(t *testing.T) {
	w := serve(func(c *gin.Context) { panic("boom") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, InternalMsg, gjson.Get(w.Body.String(), "msg").String())
}

func TestErrorMiddleware_GinErrors(t *testing.T) {
	w := serve(func(c *gin.Context) { _ = c.Error(BadRequest("bad")) })
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFail_NonHTTPCode(t *testing.T) {
	w := serve(func(c *gin.Context) { Fail(c, 10001, "业务失败") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.EqualValues(t, 10001, gjson.Get(w.Body.String(), "code").Int())
}
