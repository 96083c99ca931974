package model

type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeRadio    QuestionType = "radio"
	TypeCheckbox QuestionType = "checkbox"
)

// IsChoice reports whether the question carries selectable options.
func (t QuestionType) IsChoice() bool {
	return t == TypeRadio || t == TypeCheckbox
}

type Question struct {
	UUIDBase
	SurveyID     string           `gorm:"index;type:varchar(36);not null" json:"surveyId"`
	Name         string           `gorm:"size:255;default:'New question'" json:"name"`
	Page         int              `gorm:"default:1" json:"page"`
	Position     int              `gorm:"not null" json:"position"`
	QuestionText string           `gorm:"size:512;default:''" json:"questionText"`
	IsMandatory  bool             `gorm:"default:false" json:"isMandatory"`
	Answer       string           `gorm:"size:512" json:"answer,omitempty"`
	Points       int              `gorm:"default:0" json:"points"`
	Type         QuestionType     `gorm:"size:20;not null" json:"type"`
	Options      []QuestionOption `gorm:"foreignKey:QuestionID" json:"questionOptions,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

type QuestionOption struct {
	UUIDBase
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Position   int    `gorm:"not null" json:"position"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	Points     int    `gorm:"default:0" json:"points"`
	Text       string `gorm:"size:512;default:''" json:"text"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
