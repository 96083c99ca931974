package repository

import (
	"path/filepath"
	"testing"

	"survey_backend/internal/model"
	"survey_backend/internal/util"

	"github.com/stretchr/testify/assert"
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

func seedSurvey(t *testing.T, db *gorm.DB) *model.Survey {
	t.Helper()
	survey := &model.Survey{Name: "Quiz"}
	require.NoError(t, db.Create(survey).Error)
	return survey
}

func seedQuestion(t *testing.T, db *gorm.DB, surveyID string, position int) *model.Question {
	t.Helper()
	q := &model.Question{
		SurveyID: surveyID,
		Position: position,
		Type:     model.TypeText,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

func positionsOf(t *testing.T, db *gorm.DB, surveyID string) []int {
	t.Helper()
	var positions []int
	require.NoError(t, db.Model(&model.Question{}).
		Where("survey_id = ?", surveyID).
		Order("position asc").
		Pluck("position", &positions).Error)
	return positions
}

func TestMaxQuestionPosition(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)

	max, err := MaxQuestionPosition(db, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, max, "empty survey has max position 0")

	seedQuestion(t, db, survey.ID, 1)
	seedQuestion(t, db, survey.ID, 2)
	seedQuestion(t, db, survey.ID, 3)

	max, err = MaxQuestionPosition(db, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, max)

	other := seedSurvey(t, db)
	max, err = MaxQuestionPosition(db, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, max, "max is scoped per survey")
}

func TestShiftQuestionPositions(t *testing.T) {
	tests := []struct {
		name          string
		lowInclusive  int
		highExclusive int
		delta         int
		want          []int
	}{
		{"open range shifts the tail", 2, 0, 1, []int{1, 3, 4, 5}},
		{"closed range leaves the rest", 2, 4, 1, []int{1, 3, 4, 4}},
		{"negative delta pulls back", 3, 0, -1, []int{1, 2, 2, 3}},
		{"range below all rows is a no-op", 5, 0, 1, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			survey := seedSurvey(t, db)
			for i := 1; i <= 4; i++ {
				seedQuestion(t, db, survey.ID, i)
			}

			require.NoError(t, ShiftQuestionPositions(db, survey.ID, tt.lowInclusive, tt.highExclusive, tt.delta))

			var got []int
			require.NoError(t, db.Model(&model.Question{}).
				Where("survey_id = ?", survey.ID).
				Order("position asc").
				Pluck("position", &got).Error)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftQuestionPositionsScopedToSurvey(t *testing.T) {
	db := newTestDB(t)
	a := seedSurvey(t, db)
	b := seedSurvey(t, db)
	seedQuestion(t, db, a.ID, 1)
	seedQuestion(t, db, b.ID, 1)

	require.NoError(t, ShiftQuestionPositions(db, a.ID, 1, 0, 1))

	assert.Equal(t, []int{2}, positionsOf(t, db, a.ID))
	assert.Equal(t, []int{1}, positionsOf(t, db, b.ID), "other survey untouched")
}

func TestSetQuestionPosition(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	q := seedQuestion(t, db, survey.ID, 1)

	require.NoError(t, SetQuestionPosition(db, q.ID, 7))

	var reloaded model.Question
	require.NoError(t, db.First(&reloaded, "id = ?", q.ID).Error)
	assert.Equal(t, 7, reloaded.Position)
}

func TestReplaceQuestionOptions(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	q := seedQuestion(t, db, survey.ID, 1)

	old := model.QuestionOption{QuestionID: q.ID, Position: 1, Text: "Old"}
	require.NoError(t, db.Create(&old).Error)

	replacement := []model.QuestionOption{
		{Position: 1, Text: "Yes", IsCorrect: true, Points: 2},
		{Position: 2, Text: "No"},
	}
	require.NoError(t, ReplaceQuestionOptions(db, q.ID, replacement))

	var stored []model.QuestionOption
	require.NoError(t, db.Where("question_id = ?", q.ID).Order("position asc").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "Yes", stored[0].Text)
	assert.Equal(t, "No", stored[1].Text)
	assert.NotEqual(t, old.ID, stored[0].ID, "old option rows do not survive replacement")
}

func TestReplaceQuestionOptionsEmptySetClears(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	q := seedQuestion(t, db, survey.ID, 1)
	require.NoError(t, db.Create(&model.QuestionOption{QuestionID: q.ID, Position: 1}).Error)

	require.NoError(t, ReplaceQuestionOptions(db, q.ID, nil))

	var count int64
	require.NoError(t, db.Model(&model.QuestionOption{}).Where("question_id = ?", q.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFindSurveyQuestionsByIDs(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)
	other := seedSurvey(t, db)
	mine := seedQuestion(t, db, survey.ID, 1)
	foreign := seedQuestion(t, db, other.ID, 1)

	got, err := FindSurveyQuestionsByIDs(db, survey.ID, []string{mine.ID, foreign.ID, "no-such-id"})
	require.NoError(t, err)
	require.Len(t, got, 1, "ids outside the survey are dropped, not rejected")
	assert.Equal(t, mine.ID, got[0].ID)

	got, err = FindSurveyQuestionsByIDs(db, survey.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIncrementTotalPoints(t *testing.T) {
	db := newTestDB(t)
	survey := seedSurvey(t, db)

	require.NoError(t, IncrementTotalPoints(db, survey.ID, 10))
	require.NoError(t, IncrementTotalPoints(db, survey.ID, -3))

	var reloaded model.Survey
	require.NoError(t, db.First(&reloaded, "id = ?", survey.ID).Error)
	assert.Equal(t, 7, reloaded.TotalPoints)
}

func TestIncrementTotalPointsMissingSurvey(t *testing.T) {
	db := newTestDB(t)

	err := IncrementTotalPoints(db, "no-such-survey", 5)
	assert.ErrorIs(t, err, util.ErrSurveyNotFound)

	// A zero delta never touches the table, so it cannot detect a
	// missing survey either.
	assert.NoError(t, IncrementTotalPoints(db, "no-such-survey", 0))
}
