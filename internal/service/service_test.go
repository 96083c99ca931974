package service

import (
	"path/filepath"
	"testing"

	"survey_backend/internal/model"
	"survey_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Response{},
		&model.Answer{},
		&model.AnswerOption{},
	))
	return db
}

func newQuestionService(db *gorm.DB) *QuestionService {
	return NewQuestionService(db, repository.NewQuestionRepository(db), nil)
}

func newSurveyService(db *gorm.DB) *SurveyService {
	return NewSurveyService(repository.NewSurveyRepository(db), nil)
}

func newResponseService(db *gorm.DB) *ResponseService {
	return NewResponseService(db, repository.NewResponseRepository(db))
}

func createSurvey(t *testing.T, db *gorm.DB) *model.Survey {
	t.Helper()
	survey := &model.Survey{Name: "Quiz", IsPublished: true}
	require.NoError(t, db.Create(survey).Error)
	return survey
}

func reloadSurvey(t *testing.T, db *gorm.DB, id string) *model.Survey {
	t.Helper()
	var s model.Survey
	require.NoError(t, db.First(&s, "id = ?", id).Error)
	return &s
}

func surveyLayout(t *testing.T, db *gorm.DB, surveyID string) map[string]int {
	t.Helper()
	var qs []model.Question
	require.NoError(t, db.Where("survey_id = ?", surveyID).Find(&qs).Error)
	layout := make(map[string]int, len(qs))
	for _, q := range qs {
		layout[q.ID] = q.Position
	}
	return layout
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
