package service

import (
	"context"
	"errors"

	"survey_backend/internal/model"
	"survey_backend/internal/repository"
	"survey_backend/internal/util"
	"survey_backend/pkg/logger"
	"survey_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultOptionText = "Option 1"

type QuestionService struct {
	DB    *gorm.DB
	Repo  *repository.QuestionRepository
	Cache *redis.Client
}

func NewQuestionService(db *gorm.DB, repo *repository.QuestionRepository, rdb *redis.Client) *QuestionService {
	return &QuestionService{DB: db, Repo: repo, Cache: rdb}
}

type CreateQuestionRequest struct {
	Name         string             `json:"name"`
	Page         int                `json:"page"`
	Position     int                `json:"position" binding:"required"`
	QuestionText string             `json:"questionText"`
	IsMandatory  bool               `json:"isMandatory"`
	Answer       string             `json:"answer"`
	Points       int                `json:"points"`
	Type         model.QuestionType `json:"type" binding:"required,oneof=text radio checkbox"`
}

// CreateQuestion inserts a question at the requested (clamped) position,
// shifting the questions at or after it one step down. Non-TEXT
// questions start with a single placeholder option and zero points;
// TEXT questions take the editor-supplied point value. The survey total
// moves by the new question's points in the same transaction.
func (s *QuestionService) CreateQuestion(ctx context.Context, surveyID string, req CreateQuestionRequest) (*model.Question, error) {
	var created model.Question

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var survey model.Survey
		if err := tx.First(&survey, "id = ?", surveyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrSurveyNotFound
			}
			return err
		}

		position, err := clampQuestionPosition(tx, surveyID, req.Position)
		if err != nil {
			return err
		}

		if err := openQuestionSlot(tx, surveyID, position); err != nil {
			return err
		}

		q := model.Question{
			SurveyID:     survey.ID,
			Name:         req.Name,
			Page:         req.Page,
			Position:     position,
			QuestionText: req.QuestionText,
			IsMandatory:  req.IsMandatory,
			Type:         req.Type,
		}
		if q.Type == model.TypeText {
			q.Answer = req.Answer
			q.Points = req.Points
		}
		if err := tx.Create(&q).Error; err != nil {
			return err
		}

		if q.Type.IsChoice() {
			option := model.QuestionOption{
				QuestionID: q.ID,
				Position:   1,
				Text:       defaultOptionText,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
			q.Options = []model.QuestionOption{option}
		}

		if err := repository.IncrementTotalPoints(tx, survey.ID, q.Points); err != nil {
			return err
		}

		created = q
		return nil
	})

	if err != nil {
		logger.Log.Debug("question create transaction rolled back",
			zap.String("surveyId", surveyID), zap.Error(err))
		return nil, err
	}

	s.invalidateForm(ctx, surveyID)
	logger.Log.Debug("question created",
		zap.String("surveyId", surveyID),
		zap.String("questionId", created.ID),
		zap.Int("position", created.Position))
	return &created, nil
}

// QuestionFieldPatch carries the fields every question type may change.
type QuestionFieldPatch struct {
	Name         *string
	Page         *int
	QuestionText *string
	IsMandatory  *bool
	Position     *int
}

// QuestionUpdate is a sealed tagged variant: the payload shape a
// question accepts depends on its type, so the two shapes are distinct
// types instead of one struct stripped at runtime.
type QuestionUpdate interface {
	isQuestionUpdate()
	fieldPatch() QuestionFieldPatch
}

type TextQuestionUpdate struct {
	QuestionFieldPatch
	Answer *string
	Points *int
}

func (TextQuestionUpdate) isQuestionUpdate()              {}
func (u TextQuestionUpdate) fieldPatch() QuestionFieldPatch { return u.QuestionFieldPatch }

type ChoiceQuestionUpdate struct {
	QuestionFieldPatch
	Options []QuestionOptionInput
}

func (ChoiceQuestionUpdate) isQuestionUpdate()              {}
func (u ChoiceQuestionUpdate) fieldPatch() QuestionFieldPatch { return u.QuestionFieldPatch }

// UpdateQuestion applies a typed update in one transaction: option sets
// are replaced wholesale (never diffed), question points are recomputed,
// and the survey total moves by the same delta before commit. A
// position change clamps and then shifts the affected range.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, upd QuestionUpdate) (*model.Question, error) {
	var surveyID string

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q model.Question
		if err := tx.Preload("Options").First(&q, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}
		surveyID = q.SurveyID

		oldPoints := q.Points
		oldPosition := q.Position
		newPoints := oldPoints
		updates := map[string]interface{}{}

		switch u := upd.(type) {
		case TextQuestionUpdate:
			if q.Type != model.TypeText {
				return util.ErrWrongUpdateVariant
			}
			if u.Answer != nil {
				updates["answer"] = *u.Answer
			}
			if u.Points != nil {
				newPoints = *u.Points
			}
		case ChoiceQuestionUpdate:
			if q.Type == model.TypeText {
				return util.ErrTextQuestionOptions
			}
			if len(u.Options) > 0 {
				options, err := buildOptionSet(q.Type, u.Options)
				if err != nil {
					return err
				}
				if err := repository.ReplaceQuestionOptions(tx, q.ID, options); err != nil {
					return err
				}
				newPoints = correctOptionPoints(options)
			}
		default:
			return util.ErrWrongUpdateVariant
		}

		// Every question point change is paired with the matching
		// survey delta inside this transaction.
		if newPoints != oldPoints {
			if err := tx.Model(&q).UpdateColumn("points", newPoints).Error; err != nil {
				return err
			}
			if err := repository.IncrementTotalPoints(tx, q.SurveyID, newPoints-oldPoints); err != nil {
				return err
			}
		}

		patch := upd.fieldPatch()
		if patch.Name != nil {
			updates["name"] = *patch.Name
		}
		if patch.Page != nil {
			updates["page"] = *patch.Page
		}
		if patch.QuestionText != nil {
			updates["question_text"] = *patch.QuestionText
		}
		if patch.IsMandatory != nil {
			updates["is_mandatory"] = *patch.IsMandatory
		}
		if len(updates) > 0 {
			if err := tx.Model(&q).Updates(updates).Error; err != nil {
				return err
			}
		}

		if patch.Position != nil {
			newPosition, err := clampQuestionPosition(tx, q.SurveyID, *patch.Position)
			if err != nil {
				return err
			}
			if err := moveQuestion(tx, q.SurveyID, q.ID, oldPosition, newPosition); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		logger.Log.Debug("question update transaction rolled back",
			zap.String("questionId", id), zap.Error(err))
		return nil, err
	}

	if upd.fieldPatch().Position != nil {
		monitoring.QuestionsReordered.Inc()
	}
	s.invalidateForm(ctx, surveyID)
	return s.Repo.FindByID(id)
}

// DeleteQuestion removes a question and its options and subtracts the
// question's points from the survey total. The positions of the
// remaining questions are deliberately left untouched: the survey
// keeps a gap where the question used to sit, unlike option
// replacement which always rewrites a dense 1..M.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	var surveyID string

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q model.Question
		if err := tx.First(&q, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}
		surveyID = q.SurveyID

		if err := tx.Where("question_id = ?", id).Delete(&model.QuestionOption{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Question{}, "id = ?", id).Error; err != nil {
			return err
		}

		return repository.IncrementTotalPoints(tx, q.SurveyID, -q.Points)
	})

	if err != nil {
		logger.Log.Debug("question delete transaction rolled back",
			zap.String("questionId", id), zap.Error(err))
		return err
	}

	s.invalidateForm(ctx, surveyID)
	logger.Log.Info("question deleted", zap.String("questionId", id))
	return nil
}

// GetQuestion loads one question with its ordered options.
func (s *QuestionService) GetQuestion(id string) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

// FindQuestionsByIDs is the scoped read the scoring engine runs:
// only questions of the given survey come back, other ids are dropped.
func (s *QuestionService) FindQuestionsByIDs(surveyID string, ids []string) ([]model.Question, error) {
	return repository.FindSurveyQuestionsByIDs(s.DB, surveyID, ids)
}

func (s *QuestionService) invalidateForm(ctx context.Context, surveyID string) {
	if s.Cache == nil || surveyID == "" {
		return
	}
	if err := s.Cache.Del(ctx, formCacheKey(surveyID)).Err(); err != nil {
		logger.Log.Warn("form cache invalidation failed",
			zap.String("surveyId", surveyID), zap.Error(err))
	}
}
