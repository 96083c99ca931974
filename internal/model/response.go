package model

type Response struct {
	UUIDBase
	SurveyID string `gorm:"index;type:varchar(36);not null" json:"surveyId"`
	UserID   uint   `gorm:"index" json:"userId"`
	Score    int    `gorm:"default:0" json:"score"`
	// TotalPoints snapshots survey.total_points at submission time and
	// is never updated afterwards.
	TotalPoints int      `gorm:"default:0" json:"totalPoints"`
	Answers     []Answer `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
}

func (Response) TableName() string {
	return "responses"
}

type Answer struct {
	UUIDBase
	ResponseID string         `gorm:"index;type:varchar(36);not null" json:"responseId"`
	QuestionID string         `gorm:"index;type:varchar(36);not null" json:"questionId"`
	AnswerText string         `gorm:"size:512" json:"answerText,omitempty"`
	Options    []AnswerOption `gorm:"foreignKey:AnswerID" json:"answerOptions,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}

type AnswerOption struct {
	UUIDBase
	AnswerID         string `gorm:"index;type:varchar(36);not null" json:"answerId"`
	QuestionOptionID string `gorm:"index;type:varchar(36);not null" json:"questionOptionId"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}
