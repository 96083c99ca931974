package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"survey_backend/internal/model"
	"survey_backend/internal/repository"
	"survey_backend/internal/util"
	"survey_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const formCacheTTL = 5 * time.Minute

func formCacheKey(surveyID string) string {
	return "survey:form:" + surveyID
}

type SurveyService struct {
	Repo  *repository.SurveyRepository
	Cache *redis.Client
}

func NewSurveyService(repo *repository.SurveyRepository, rdb *redis.Client) *SurveyService {
	return &SurveyService{Repo: repo, Cache: rdb}
}

type SurveyRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	IsPublished *bool               `json:"isPublished"`
	Access      *model.SurveyAccess `json:"access"`
}

func (s *SurveyService) CreateSurvey(userID uint, req SurveyRequest) (*model.Survey, error) {
	survey := &model.Survey{
		Name:   "New survey",
		Access: model.AccessPublic,
		UserID: &userID,
	}
	if req.Name != nil {
		survey.Name = *req.Name
	}
	if req.Description != nil {
		survey.Description = *req.Description
	}
	if req.Access != nil {
		survey.Access = *req.Access
	}
	if req.IsPublished != nil {
		survey.IsPublished = *req.IsPublished
	}

	if err := s.Repo.Create(survey); err != nil {
		return nil, err
	}
	logger.Log.Info("survey created", zap.String("surveyId", survey.ID))
	return survey, nil
}

func (s *SurveyService) UpdateSurvey(ctx context.Context, id string, req SurveyRequest) (*model.Survey, error) {
	survey, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSurveyNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		survey.Name = *req.Name
	}
	if req.Description != nil {
		survey.Description = *req.Description
	}
	if req.Access != nil {
		survey.Access = *req.Access
	}
	if req.IsPublished != nil {
		survey.IsPublished = *req.IsPublished
	}

	if err := s.Repo.Update(survey); err != nil {
		return nil, err
	}
	s.invalidateForm(ctx, id)
	return survey, nil
}

func (s *SurveyService) DeleteSurvey(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateForm(ctx, id)
	logger.Log.Info("survey deleted", zap.String("surveyId", id))
	return nil
}

// GetSurvey returns a survey with its full ordered question set, the
// owner's editing view.
func (s *SurveyService) GetSurvey(id string) (*model.Survey, error) {
	survey, err := s.Repo.FindForm(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSurveyNotFound
		}
		return nil, err
	}
	return survey, nil
}

// GetForm is the respondent view: only published surveys come back,
// cached briefly since forms are read far more often than edited.
func (s *SurveyService) GetForm(ctx context.Context, id string) (*model.Survey, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, formCacheKey(id)).Bytes(); err == nil {
			var cached model.Survey
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	survey, err := s.GetSurvey(id)
	if err != nil {
		return nil, err
	}
	if !survey.IsPublished {
		return nil, util.ErrSurveyNotAvailable
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(survey); err == nil {
			if err := s.Cache.Set(ctx, formCacheKey(id), raw, formCacheTTL).Err(); err != nil {
				logger.Log.Warn("form cache write failed", zap.String("surveyId", id), zap.Error(err))
			}
		}
	}
	return survey, nil
}

// IsOwner is the ownership check the HTTP layer runs before letting a
// question mutation through.
func (s *SurveyService) IsOwner(surveyID string, userID uint) (bool, error) {
	survey, err := s.Repo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, util.ErrSurveyNotFound
		}
		return false, err
	}
	return survey.UserID != nil && *survey.UserID == userID, nil
}

func (s *SurveyService) invalidateForm(ctx context.Context, surveyID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, formCacheKey(surveyID)).Err(); err != nil {
		logger.Log.Warn("form cache invalidation failed",
			zap.String("surveyId", surveyID), zap.Error(err))
	}
}
