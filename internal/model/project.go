package model

// Project 项目
type Project struct {
	BaseModel
	OrganizationID string `gorm:"type:varchar(50);index;not null" json:"organization_id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	Enable         bool   `json:"enable"`
}

func (Project) TableName() string {
	return "project"
}

// RobotPlatform 机器人平台
type RobotPlatform string

const (
	RobotPlatformInSite   RobotPlatform = "IN_SITE" // 站内信
	RobotPlatformMail     RobotPlatform = "MAIL"
	RobotPlatformDingTalk RobotPlatform = "DING_TALK"
	RobotPlatformLark     RobotPlatform = "LARK"
	RobotPlatformWeCom    RobotPlatform = "WE_COM"
	RobotPlatformCustom   RobotPlatform = "CUSTOM"
)

// ProjectRobot 项目机器人
type ProjectRobot struct {
	BaseModel
	ProjectID string        `gorm:"type:varchar(50);index;not null" json:"project_id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Platform  RobotPlatform `gorm:"type:varchar(50);not null" json:"platform"`
	Webhook   string        `gorm:"type:varchar(500)" json:"webhook"`
	Enable    bool          `json:"enable"`
}

func (ProjectRobot) TableName() string {
	return "project_robot"
}

// User 平台用户，Deleted 为逻辑删除标记
type User struct {
	ID      string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(64)" json:"email"`
	Deleted bool   `gorm:"default:false" json:"deleted"`
}

func (User) TableName() string {
	return "user"
}

// ProjectMember 项目成员关系
type ProjectMember struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID string `gorm:"type:varchar(50);not null;uniqueIndex:uk_project_member" json:"project_id"`
	UserID    string `gorm:"type:varchar(50);not null;uniqueIndex:uk_project_member" json:"user_id"`
}

func (ProjectMember) TableName() string {
	return "project_member"
}
