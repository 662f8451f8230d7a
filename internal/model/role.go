package model

// Role 面试岗位
type Role struct {
	UUIDBase
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Role) TableName() string {
	return "roles"
}

// InterviewConfig 一套出题配置：岗位 + 总题数 + 技术题占比
type InterviewConfig struct {
	UUIDBase
	Name           string `gorm:"size:255;not null" json:"name"`
	RoleID         string `gorm:"index;type:varchar(36)" json:"roleId"`
	TotalQuestions int    `gorm:"default:10" json:"totalQuestions"`
	TechRatio      int    `gorm:"default:50" json:"techRatio"` // 百分比 0-100

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (InterviewConfig) TableName() string {
	return "interview_configs"
}
