package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newContext(lang language.Tag) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	c.Request = req.WithContext(i18n.WithLanguage(req.Context(), lang))
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessUsesPlatformCode(t *testing.T) {
	c, w := newContext(language.AmericanEnglish)
	Success(c, []string{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":100200,"message":"Success","data":[]}`, w.Body.String())
}

func TestFailBusinessError(t *testing.T) {
	c, w := newContext(language.AmericanEnglish)
	Fail(c, errcode.ErrUserViewExist)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, errcode.CodeUserViewExist, resp.Code)
	assert.Equal(t, "The view name already exists", resp.Message)
}

func TestFailWithDetail(t *testing.T) {
	c, w := newContext(language.SimplifiedChinese)
	BadRequest(c, "scopeId is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, errcode.CodeParamError, resp.Code)
	assert.Equal(t, "参数错误: scopeId is required", resp.Message)
}

func TestFailUnexpectedError(t *testing.T) {
	c, w := newContext(language.AmericanEnglish)
	Fail(c, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, errcode.CodeFailed, resp.Code)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestSuccessWithCode(t *testing.T) {
	c, w := newContext(language.AmericanEnglish)
	SuccessWithCode(c, errcode.CodePartialSuccess, "partial", gin.H{"n": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, errcode.CodePartialSuccess, decode(t, w).Code)
}
