// Package testplatform 提供消息通知与用户视图接口的 Go 客户端 SDK
//
// 使用示例：
//
//	client := testplatform.NewClient("http://127.0.0.1:8080", token,
//	    testplatform.WithLanguage("en-US"),
//	    testplatform.WithTimeout(10*time.Second),
//	)
//
//	views, err := client.ListUserViews(ctx, "FUNCTIONAL_CASE", projectID)
package testplatform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// 服务端结果码
const (
	CodeSuccess        = 100200
	CodePartialSuccess = 102001
)

// APIError 服务端返回的业务错误
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d (HTTP %d): %s", e.Code, e.HTTPStatus, e.Message)
}

// IsCode 判断 err 是否为指定结果码的业务错误
func IsCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Client 接口客户端
type Client struct {
	serverURL  string
	token      string
	language   string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
}

// Option 客户端配置选项
type Option func(*Client)

// WithTimeout 设置请求超时
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMaxRetries 设置查询接口网络失败时的重试次数
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithLanguage 设置 Accept-Language
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithHTTPClient 使用自定义 HTTP 客户端
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient 创建客户端，token 为服务端签发的 JWT
func NewClient(serverURL, token string, opts ...Option) *Client {
	c := &Client{
		serverURL:  strings.TrimRight(serverURL, "/"),
		token:      token,
		timeout:    30 * time.Second,
		maxRetries: 2,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// GetServerURL 服务端地址
func (c *Client) GetServerURL() string {
	return c.serverURL
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// request 发送请求并解析统一响应，部分成功不视为错误，返回结果码供调用方判断
func (c *Client) request(ctx context.Context, method, endpoint string, data interface{}, out interface{}) (int, error) {
	var payload []byte
	if data != nil {
		var err error
		payload, err = json.Marshal(data)
		if err != nil {
			return 0, err
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += c.maxRetries
	}

	var (
		resp *http.Response
		err  error
	)
	for i := 0; i < attempts; i++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, method, c.serverURL+endpoint, bytes.NewReader(payload))
		if err != nil {
			return 0, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		if c.language != "" {
			req.Header.Set("Accept-Language", c.language)
		}

		resp, err = c.httpClient.Do(req)
		if err == nil || ctx.Err() != nil {
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("网络请求失败: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var result envelope
	if err := json.Unmarshal(respBody, &result); err != nil {
		return 0, fmt.Errorf("解析响应失败 (HTTP %d): %w", resp.StatusCode, err)
	}

	if result.Code != CodeSuccess && result.Code != CodePartialSuccess {
		return result.Code, &APIError{HTTPStatus: resp.StatusCode, Code: result.Code, Message: result.Message}
	}

	if out != nil && len(result.Data) > 0 {
		if err := json.Unmarshal(result.Data, out); err != nil {
			return result.Code, err
		}
	}
	return result.Code, nil
}

func viewPath(viewType, action string) string {
	return "/user-view/" + url.PathEscape(viewType) + "/" + action
}
