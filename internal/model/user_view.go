package model

// UserView 用户自定义视图
// 同一用户在同一范围、同一视图类型下名称唯一
type UserView struct {
	ID         string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(255);not null;uniqueIndex:uk_user_view_name,priority:4" json:"name"`
	UserID     string `gorm:"type:varchar(50);not null;uniqueIndex:uk_user_view_name,priority:1" json:"user_id"`
	ScopeID    string `gorm:"type:varchar(50);not null;uniqueIndex:uk_user_view_name,priority:2" json:"scope_id"`
	ViewType   string `gorm:"type:varchar(50);not null;uniqueIndex:uk_user_view_name,priority:3" json:"view_type"`
	SearchMode string `gorm:"type:varchar(10);not null" json:"search_mode"`
	Pos        int64  `gorm:"not null" json:"pos"`
	CreateTime int64  `gorm:"not null" json:"create_time"`
	UpdateTime int64  `gorm:"not null" json:"update_time"`
}

func (UserView) TableName() string {
	return "user_view"
}

// UserViewCondition 视图筛选条件，随视图整体替换
type UserViewCondition struct {
	ID              string `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserViewID      string `gorm:"type:varchar(50);not null;index" json:"user_view_id"`
	Name            string `gorm:"type:varchar(255);not null" json:"name"`
	Value           string `gorm:"type:text" json:"value"`
	ValueType       string `gorm:"type:varchar(20);not null" json:"value_type"`
	CustomField     bool   `json:"custom_field"`
	CustomFieldType string `gorm:"type:varchar(50)" json:"custom_field_type"`
	Operator        string `gorm:"type:varchar(50)" json:"operator"`
}

func (UserViewCondition) TableName() string {
	return "user_view_condition"
}

// 匹配模式
const (
	SearchModeAnd = "AND"
	SearchModeOr  = "OR"
)
