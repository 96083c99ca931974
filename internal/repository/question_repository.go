package repository

import (
	"survey_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.Preload("Options", optionOrder).First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) ListBySurvey(surveyID string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Preload("Options", optionOrder).
		Where("survey_id = ?", surveyID).
		Order("position asc").
		Find(&qs).Error
	return qs, err
}

func optionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

// FindSurveyQuestionsByIDs loads only the questions referenced by a
// submission, scoped to the survey. Ids pointing outside the survey
// simply do not come back.
func FindSurveyQuestionsByIDs(tx *gorm.DB, surveyID string, ids []string) ([]model.Question, error) {
	var qs []model.Question
	if len(ids) == 0 {
		return qs, nil
	}
	err := tx.Preload("Options", optionOrder).
		Where("survey_id = ? AND id IN ?", surveyID, ids).
		Find(&qs).Error
	return qs, err
}

// MaxQuestionPosition reads the highest occupied position in a survey,
// 0 when the survey has no questions. On MySQL the aggregate runs under
// FOR UPDATE so two concurrent inserts cannot compute the same next
// position.
func MaxQuestionPosition(tx *gorm.DB, surveyID string) (int, error) {
	q := tx.Model(&model.Question{}).Where("survey_id = ?", surveyID)
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var max int
	err := q.Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	return max, err
}

// ShiftQuestionPositions bulk-moves every question of the survey with
// lowInclusive <= position < highExclusive by delta in a single UPDATE.
// highExclusive <= 0 leaves the range open at the top.
func ShiftQuestionPositions(tx *gorm.DB, surveyID string, lowInclusive, highExclusive, delta int) error {
	q := tx.Model(&model.Question{}).
		Where("survey_id = ? AND position >= ?", surveyID, lowInclusive)
	if highExclusive > 0 {
		q = q.Where("position < ?", highExclusive)
	}
	return q.UpdateColumn("position", gorm.Expr("position + ?", delta)).Error
}

// SetQuestionPosition pins a single question to the given position.
func SetQuestionPosition(tx *gorm.DB, questionID string, position int) error {
	return tx.Model(&model.Question{}).
		Where("id = ?", questionID).
		UpdateColumn("position", position).Error
}

// ReplaceQuestionOptions drops the current option set of a question and
// stores the given one. Old option rows do not survive an update, so
// their ids are not stable across it.
func ReplaceQuestionOptions(tx *gorm.DB, questionID string, options []model.QuestionOption) error {
	if err := tx.Where("question_id = ?", questionID).Delete(&model.QuestionOption{}).Error; err != nil {
		return err
	}
	for i := range options {
		options[i].QuestionID = questionID
	}
	if len(options) == 0 {
		return nil
	}
	return tx.Create(&options).Error
}
