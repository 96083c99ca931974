package repository

import (
	"survey_backend/internal/model"
	"survey_backend/internal/util"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

func (r *SurveyRepository) Create(survey *model.Survey) error {
	return r.DB.Create(survey).Error
}

func (r *SurveyRepository) FindByID(id string) (*model.Survey, error) {
	var s model.Survey
	err := r.DB.First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindForm loads a survey together with its ordered questions and
// options, the shape a respondent renders.
func (r *SurveyRepository) FindForm(id string) (*model.Survey, error) {
	var s model.Survey
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Questions.Options", optionOrder).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SurveyRepository) Update(survey *model.Survey) error {
	return r.DB.Save(survey).Error
}

func (r *SurveyRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []string
		if err := tx.Model(&model.Question{}).Where("survey_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
				return err
			}
			if err := tx.Where("survey_id = ?", id).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&model.Survey{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return util.ErrSurveyNotFound
		}
		return nil
	})
}

// IncrementTotalPoints applies a survey points delta as one atomic
// increment rather than a read-modify-write, so concurrent question
// edits cannot lose updates.
func IncrementTotalPoints(tx *gorm.DB, surveyID string, delta int) error {
	if delta == 0 {
		return nil
	}
	result := tx.Model(&model.Survey{}).
		Where("id = ?", surveyID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrSurveyNotFound
	}
	return nil
}
