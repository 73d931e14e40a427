package model

import "gorm.io/datatypes"

// OperationLog 操作日志模型
type OperationLog struct {
	BaseModel
	OrganizationID string         `gorm:"type:varchar(50);index" json:"organization_id"`
	UserID         string         `gorm:"type:varchar(50);index" json:"user_id"`
	UserName       string         `gorm:"type:varchar(100)" json:"user_name"`
	Type           string         `gorm:"type:varchar(20);not null" json:"type"`
	Module         string         `gorm:"type:varchar(50);not null;index" json:"module"`
	SourceID       string         `gorm:"type:varchar(50)" json:"source_id"`
	Method         string         `gorm:"type:varchar(10)" json:"method"`
	Path           string         `gorm:"type:varchar(255)" json:"path"`
	IPAddress      string         `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent      string         `gorm:"type:varchar(500)" json:"user_agent"`
	RequestBody    datatypes.JSON `json:"request_body"`
	ResponseCode   int            `gorm:"type:int" json:"response_code"`
	Duration       int64          `gorm:"type:bigint" json:"duration"` // 毫秒
}

func (OperationLog) TableName() string {
	return "operation_log"
}

// 操作类型常量
const (
	OperationAdd    = "ADD"
	OperationUpdate = "UPDATE"
	OperationDelete = "DELETE"
)

// 模块常量
const (
	ModuleUserView    = "USER_VIEW"
	ModuleMessageTask = "PROJECT_MESSAGE"
)
