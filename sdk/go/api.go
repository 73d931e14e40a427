package testplatform

import (
	"context"
	"net/http"
	"net/url"
)

// SaveMessageTask 保存消息任务
func (c *Client) SaveMessageTask(ctx context.Context, req *MessageTaskRequest) (*SaveResult, error) {
	var result SaveResult
	if _, err := c.request(ctx, http.MethodPost, "/notice/message/task/save", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMessageTasks 查询项目消息配置
func (c *Client) GetMessageTasks(ctx context.Context, projectID string) ([]MessageTask, error) {
	tasks := []MessageTask{}
	if _, err := c.request(ctx, http.MethodGet, "/notice/message/task/get/"+url.PathEscape(projectID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListUserViews 视图列表，自定义视图在前
func (c *Client) ListUserViews(ctx context.Context, viewType, scopeID string) ([]UserView, error) {
	var views []UserView
	endpoint := viewPath(viewType, "list") + "?scopeId=" + url.QueryEscape(scopeID)
	if _, err := c.request(ctx, http.MethodGet, endpoint, nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// GroupedUserViews 分组视图列表
func (c *Client) GroupedUserViews(ctx context.Context, viewType, scopeID string) (*GroupedUserViews, error) {
	var grouped GroupedUserViews
	endpoint := viewPath(viewType, "grouped/list") + "?scopeId=" + url.QueryEscape(scopeID)
	if _, err := c.request(ctx, http.MethodGet, endpoint, nil, &grouped); err != nil {
		return nil, err
	}
	return &grouped, nil
}

// GetUserView 视图详情
func (c *Client) GetUserView(ctx context.Context, viewType, id string) (*UserView, error) {
	var view UserView
	if _, err := c.request(ctx, http.MethodGet, viewPath(viewType, "get/"+url.PathEscape(id)), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// AddUserView 新增视图
func (c *Client) AddUserView(ctx context.Context, viewType string, req *AddUserViewRequest) (*UserView, error) {
	var view UserView
	if _, err := c.request(ctx, http.MethodPost, viewPath(viewType, "add"), req, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateUserView 修改视图
func (c *Client) UpdateUserView(ctx context.Context, viewType string, req *UpdateUserViewRequest) (*UserView, error) {
	var view UserView
	if _, err := c.request(ctx, http.MethodPost, viewPath(viewType, "update"), req, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// DeleteUserView 删除视图
func (c *Client) DeleteUserView(ctx context.Context, viewType, id string) error {
	_, err := c.request(ctx, http.MethodGet, viewPath(viewType, "delete/"+url.PathEscape(id)), nil, nil)
	return err
}
