package testplatform

// Condition 视图筛选条件，Value 保持服务端返回的 JSON 类型
type Condition struct {
	Name            string      `json:"name"`
	Operator        string      `json:"operator"`
	Value           interface{} `json:"value"`
	CustomField     bool        `json:"custom_field"`
	CustomFieldType string      `json:"custom_field_type,omitempty"`
}

// UserView 视图
type UserView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	UserID     string      `json:"user_id"`
	ScopeID    string      `json:"scope_id"`
	ViewType   string      `json:"view_type"`
	SearchMode string      `json:"search_mode"`
	Pos        int64       `json:"pos"`
	Internal   bool        `json:"internal"`
	CreateTime int64       `json:"create_time"`
	UpdateTime int64       `json:"update_time"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// GroupedUserViews 按内置/自定义分组的视图
type GroupedUserViews struct {
	InternalViews []UserView `json:"internal_views"`
	CustomViews   []UserView `json:"custom_views"`
}

// AddUserViewRequest 新增视图
type AddUserViewRequest struct {
	ScopeID    string      `json:"scope_id"`
	Name       string      `json:"name"`
	SearchMode string      `json:"search_mode,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// UpdateUserViewRequest 修改视图，Conditions 为 nil 时不修改条件
type UpdateUserViewRequest struct {
	ID         string      `json:"id"`
	Name       string      `json:"name,omitempty"`
	SearchMode string      `json:"search_mode,omitempty"`
	Conditions []Condition `json:"conditions"`
}

// MessageTaskRequest 保存消息任务
type MessageTaskRequest struct {
	ProjectID          string   `json:"project_id"`
	TaskType           string   `json:"task_type"`
	Event              string   `json:"event"`
	ReceiverIDs        []string `json:"receiver_ids"`
	RobotID            string   `json:"robot_id,omitempty"`
	TestID             string   `json:"test_id,omitempty"`
	Enable             *bool    `json:"enable,omitempty"`
	Template           string   `json:"template,omitempty"`
	Subject            string   `json:"subject,omitempty"`
	UseDefaultTemplate bool     `json:"use_default_template"`
	UseDefaultSubject  bool     `json:"use_default_subject"`
}

// SaveResult 保存结果，Unresolved 非空表示部分成功
type SaveResult struct {
	Receivers    []string `json:"receivers"`
	Unresolved   []string `json:"unresolved"`
	RobotID      string   `json:"robot_id"`
	CreatedCount int      `json:"created_count"`
	UpdatedCount int      `json:"updated_count"`
}

// Partial 是否存在无效的接收人
func (r *SaveResult) Partial() bool {
	return len(r.Unresolved) > 0
}

// Receiver 接收人
type Receiver struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MessageTask 按任务类型、事件、机器人聚合的消息配置
type MessageTask struct {
	ProjectID      string     `json:"project_id"`
	TaskType       string     `json:"task_type"`
	Event          string     `json:"event"`
	ProjectRobotID string     `json:"project_robot_id"`
	RobotName      string     `json:"robot_name"`
	Platform       string     `json:"platform"`
	Enable         bool       `json:"enable"`
	Template       string     `json:"template"`
	Receivers      []Receiver `json:"receivers"`
}
