package service

import (
	"context"
	"errors"

	"survey_backend/internal/model"
	"survey_backend/internal/repository"
	"survey_backend/internal/util"
	"survey_backend/pkg/logger"
	"survey_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ResponseService struct {
	DB   *gorm.DB
	Repo *repository.ResponseRepository
}

func NewResponseService(db *gorm.DB, repo *repository.ResponseRepository) *ResponseService {
	return &ResponseService{DB: db, Repo: repo}
}

type SubmitAnswer struct {
	QuestionID    string   `json:"questionId" binding:"required"`
	AnswerText    string   `json:"answerText"`
	AnswerOptions []string `json:"answerOptions"`
}

// SubmitResponse scores a full answer batch in one transaction:
// the response shell snapshots the survey total, every answer is
// validated against the loaded question definitions, and the summed
// score lands on the response before commit. Any failure rolls the
// whole graph back; a partial response is never observable.
//
// Answers naming questions outside the survey are skipped, as are
// selected option ids that do not belong to the question. Submitting
// twice creates two responses; there is no dedup key.
func (s *ResponseService) SubmitResponse(ctx context.Context, surveyID string, userID uint, answers []SubmitAnswer) (*model.Response, error) {
	var created *model.Response

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var survey model.Survey
		if err := tx.First(&survey, "id = ?", surveyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrSurveyNotFound
			}
			return err
		}

		ids := make([]string, 0, len(answers))
		for _, a := range answers {
			ids = append(ids, a.QuestionID)
		}
		questions, err := repository.FindSurveyQuestionsByIDs(tx, surveyID, ids)
		if err != nil {
			return err
		}
		byID := make(map[string]*model.Question, len(questions))
		for i := range questions {
			byID[questions[i].ID] = &questions[i]
		}

		response := model.Response{
			SurveyID:    surveyID,
			UserID:      userID,
			Score:       0,
			TotalPoints: survey.TotalPoints,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		score := 0
		for _, submitted := range answers {
			question, ok := byID[submitted.QuestionID]
			if !ok {
				continue
			}

			answer := model.Answer{
				ResponseID: response.ID,
				QuestionID: question.ID,
			}

			if question.Type == model.TypeText {
				answer.AnswerText = submitted.AnswerText
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
				// Exact match only: case and whitespace count.
				if submitted.AnswerText == question.Answer {
					score += question.Points
				}
			} else {
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
				for _, optionID := range submitted.AnswerOptions {
					option := findOption(question.Options, optionID)
					if option == nil {
						continue
					}
					selected := model.AnswerOption{
						AnswerID:         answer.ID,
						QuestionOptionID: option.ID,
					}
					if err := tx.Create(&selected).Error; err != nil {
						return err
					}
					answer.Options = append(answer.Options, selected)
					if option.IsCorrect {
						score += option.Points
					}
				}
			}

			response.Answers = append(response.Answers, answer)
		}

		if err := tx.Model(&response).UpdateColumn("score", score).Error; err != nil {
			return err
		}
		response.Score = score

		created = &response
		return nil
	})

	if err != nil {
		logger.Log.Debug("response create transaction rolled back",
			zap.String("surveyId", surveyID), zap.Error(err))
		return nil, err
	}

	monitoring.ResponsesSubmitted.Inc()
	logger.Log.Info("response submitted",
		zap.String("surveyId", surveyID),
		zap.String("responseId", created.ID),
		zap.Int("score", created.Score),
		zap.Int("totalPoints", created.TotalPoints))
	return created, nil
}

// ListResponses returns every response of a survey with answers and
// selected options, for the survey owner.
func (s *ResponseService) ListResponses(surveyID string) ([]model.Response, error) {
	return s.Repo.ListBySurvey(surveyID)
}

func findOption(options []model.QuestionOption, id string) *model.QuestionOption {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}
