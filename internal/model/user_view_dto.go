package model

import (
	"test-platform/internal/pkg/condition"

	"github.com/goccy/go-json"
)

// CombineCondition 组合查询条件
type CombineCondition struct {
	Name            string          `json:"name" binding:"required,max=255"`
	Operator        string          `json:"operator" binding:"required,max=50"`
	Value           condition.Value `json:"value"`
	CustomField     bool            `json:"custom_field"`
	CustomFieldType string          `json:"custom_field_type" binding:"max=50"`
}

// UnmarshalJSON 保留请求中 value 的原始类型
func (c *CombineCondition) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name            string          `json:"name"`
		Operator        string          `json:"operator"`
		Value           json.RawMessage `json:"value"`
		CustomField     bool            `json:"custom_field"`
		CustomFieldType string          `json:"custom_field_type"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := condition.FromJSON(aux.Value)
	if err != nil {
		return err
	}
	*c = CombineCondition{
		Name:            aux.Name,
		Operator:        aux.Operator,
		Value:           value,
		CustomField:     aux.CustomField,
		CustomFieldType: aux.CustomFieldType,
	}
	return nil
}

// UserViewAddRequest 新增视图请求
type UserViewAddRequest struct {
	ScopeID    string             `json:"scope_id" binding:"required,max=50"`
	Name       string             `json:"name" binding:"required,max=255"`
	SearchMode string             `json:"search_mode" binding:"omitempty,search_mode"`
	Conditions []CombineCondition `json:"conditions" binding:"omitempty,dive"`
}

// UserViewUpdateRequest 更新视图请求
// Conditions 为 nil 表示不修改条件，空数组表示清空条件
type UserViewUpdateRequest struct {
	ID         string             `json:"id" binding:"required,max=50"`
	Name       string             `json:"name" binding:"max=255"`
	SearchMode string             `json:"search_mode" binding:"omitempty,search_mode"`
	Conditions []CombineCondition `json:"conditions" binding:"omitempty,dive"`
}

// UserViewDTO 视图详情
type UserViewDTO struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	UserID     string             `json:"user_id"`
	ScopeID    string             `json:"scope_id"`
	ViewType   string             `json:"view_type"`
	SearchMode string             `json:"search_mode"`
	Pos        int64              `json:"pos"`
	Internal   bool               `json:"internal"`
	CreateTime int64              `json:"create_time"`
	UpdateTime int64              `json:"update_time"`
	Conditions []CombineCondition `json:"conditions"`
}

// UserViewItem 视图列表项，不含条件
type UserViewItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UserID     string `json:"user_id"`
	ScopeID    string `json:"scope_id"`
	ViewType   string `json:"view_type"`
	SearchMode string `json:"search_mode"`
	Pos        int64  `json:"pos"`
	Internal   bool   `json:"internal"`
	CreateTime int64  `json:"create_time"`
	UpdateTime int64  `json:"update_time"`
}

// UserViewListGroupedDTO 按内置/自定义分组的视图列表
type UserViewListGroupedDTO struct {
	InternalViews []UserViewItem `json:"internal_views"`
	CustomViews   []UserViewItem `json:"custom_views"`
}
