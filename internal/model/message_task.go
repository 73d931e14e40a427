package model

// MessageTask 消息通知任务，每个接收人一行
// (task_type, event, receiver, project_id) 唯一
type MessageTask struct {
	ID                 string `gorm:"type:varchar(50);primaryKey" json:"id"`
	ProjectID          string `gorm:"type:varchar(50);not null;uniqueIndex:uk_message_task,priority:4" json:"project_id"`
	TaskType           string `gorm:"type:varchar(64);not null;uniqueIndex:uk_message_task,priority:1" json:"task_type"`
	Event              string `gorm:"type:varchar(255);not null;uniqueIndex:uk_message_task,priority:2" json:"event"`
	Receiver           string `gorm:"type:varchar(50);not null;uniqueIndex:uk_message_task,priority:3" json:"receiver"`
	ProjectRobotID     string `gorm:"type:varchar(50);not null;index" json:"project_robot_id"`
	TestID             string `gorm:"type:varchar(50);not null" json:"test_id"`
	Enable             bool   `json:"enable"`
	Template           string `gorm:"type:text" json:"template"`
	Subject            string `gorm:"type:varchar(255)" json:"subject"`
	UseDefaultTemplate bool   `json:"use_default_template"`
	UseDefaultSubject  bool   `json:"use_default_subject"`
	CreateUser         string `gorm:"type:varchar(50)" json:"create_user"`
	CreateTime         int64  `gorm:"not null" json:"create_time"`
	UpdateUser         string `gorm:"type:varchar(50)" json:"update_user"`
	UpdateTime         int64  `gorm:"not null" json:"update_time"`
}

func (MessageTask) TableName() string {
	return "message_task"
}

// DefaultTestID 未关联具体测试资源
const DefaultTestID = "NONE"

// 任务类型
const (
	TaskTypeAPIDefinition  = "API_DEFINITION_TASK"
	TaskTypeAPIScenario    = "API_SCENARIO_TASK"
	TaskTypeTestPlan       = "TEST_PLAN_TASK"
	TaskTypeCaseReview     = "CASE_REVIEW_TASK"
	TaskTypeFunctionalCase = "FUNCTIONAL_CASE_TASK"
	TaskTypeBug            = "BUG_TASK"
	TaskTypeSchedule       = "SCHEDULE_TASK"
)

// 事件
const (
	EventCreate            = "CREATE"
	EventUpdate            = "UPDATE"
	EventDelete            = "DELETE"
	EventExecuteSuccessful = "EXECUTE_SUCCESSFUL"
	EventExecuteFailed     = "EXECUTE_FAILED"
	EventComment           = "COMMENT"
)

// 关联人占位符，发送时按业务数据解析为具体用户
const (
	ReceiverCreator      = "CREATOR"
	ReceiverFollowPeople = "FOLLOW_PEOPLE"
	ReceiverOperator     = "OPERATOR"
)

// IsRelatedReceiver 是否为关联人占位符
func IsRelatedReceiver(receiver string) bool {
	switch receiver {
	case ReceiverCreator, ReceiverFollowPeople, ReceiverOperator:
		return true
	}
	return false
}

// MessageTaskRequest 保存消息任务请求
// Enable 为空时按关闭处理，RobotID 为空时使用项目默认机器人
type MessageTaskRequest struct {
	ProjectID          string   `json:"project_id" binding:"required,max=50"`
	TaskType           string   `json:"task_type" binding:"required,max=64"`
	Event              string   `json:"event" binding:"required,max=255"`
	ReceiverIDs        []string `json:"receiver_ids"`
	RobotID            string   `json:"robot_id" binding:"max=50"`
	TestID             string   `json:"test_id" binding:"max=50"`
	Enable             *bool    `json:"enable"`
	Template           string   `json:"template"`
	Subject            string   `json:"subject" binding:"max=255"`
	UseDefaultTemplate bool     `json:"use_default_template"`
	UseDefaultSubject  bool     `json:"use_default_subject"`
}

// MessageTaskSaveResult 保存结果
type MessageTaskSaveResult struct {
	Receivers    []string `json:"receivers"`
	Unresolved   []string `json:"unresolved"`
	RobotID      string   `json:"robot_id"`
	CreatedCount int      `json:"created_count"`
	UpdatedCount int      `json:"updated_count"`
}

// Partial 是否存在未能解析的接收人
func (r *MessageTaskSaveResult) Partial() bool {
	return len(r.Unresolved) > 0
}

// ReceiverDTO 接收人
type ReceiverDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MessageTaskDTO 按任务类型、事件、机器人聚合的消息配置
type MessageTaskDTO struct {
	ProjectID      string        `json:"project_id"`
	TaskType       string        `json:"task_type"`
	Event          string        `json:"event"`
	ProjectRobotID string        `json:"project_robot_id"`
	RobotName      string        `json:"robot_name"`
	Platform       string        `json:"platform"`
	Enable         bool          `json:"enable"`
	Template       string        `json:"template"`
	Receivers      []ReceiverDTO `json:"receivers"`
}
