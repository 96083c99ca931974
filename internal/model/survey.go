package model

type SurveyAccess string

const (
	AccessPublic SurveyAccess = "public"
	AccessLink   SurveyAccess = "link"
)

type Survey struct {
	UUIDBase
	Name        string       `gorm:"size:255;default:'New survey'" json:"name"`
	Description string       `gorm:"size:512;default:''" json:"description"`
	IsPublished bool         `gorm:"default:false" json:"isPublished"`
	Access      SurveyAccess `gorm:"size:20;default:'public'" json:"access"`
	TotalPoints int          `gorm:"default:0" json:"totalPoints"`
	UserID      *uint        `gorm:"index" json:"userId,omitempty"`
	Questions   []Question   `gorm:"foreignKey:SurveyID" json:"questions,omitempty"`
	Responses   []Response   `gorm:"foreignKey:SurveyID" json:"-"`
}

func (Survey) TableName() string {
	return "surveys"
}
