package model

const (
	QuestionTypeTechnical  = "technical"
	QuestionTypeBackground = "background"

	DifficultyMin = 1
	DifficultyMax = 5
)

// Question 题库中的面试题，生成后可选入库；快照进会话后不再引用
type Question struct {
	UUIDBase
	Type           string   `gorm:"size:20;not null;index" json:"type"` // technical / background
	Difficulty     int      `gorm:"not null" json:"difficulty"`         // 1..5
	Text           string   `gorm:"type:text;not null" json:"text"`
	Tags           []string `gorm:"serializer:json;type:json" json:"tags"`
	ExpectedPoints []string `gorm:"serializer:json;type:json" json:"expectedPoints"`
}

func (Question) TableName() string {
	return "questions"
}

// ValidType 仅允许两个枚举值，其他值一律拒绝而不是纠正
func ValidType(t string) bool {
	return t == QuestionTypeTechnical || t == QuestionTypeBackground
}

func ValidDifficulty(d int) bool {
	return d >= DifficultyMin && d <= DifficultyMax
}
