package repository

import (
	"survey_backend/internal/model"

	"gorm.io/gorm"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

func (r *ResponseRepository) FindByID(id string) (*model.Response, error) {
	var resp model.Response
	err := r.DB.Preload("Answers.Options").Preload("Answers").First(&resp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *ResponseRepository) ListBySurvey(surveyID string) ([]model.Response, error) {
	var responses []model.Response
	err := r.DB.Preload("Answers.Options").Preload("Answers").
		Where("survey_id = ?", surveyID).
		Order("created_at asc").
		Find(&responses).Error
	return responses, err
}
