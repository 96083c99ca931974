package service

import (
	"context"
	"testing"

	"survey_backend/internal/model"
	"survey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSurveyDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newSurveyService(db)

	survey, err := svc.CreateSurvey(3, SurveyRequest{})
	require.NoError(t, err)
	assert.Equal(t, "New survey", survey.Name)
	assert.Equal(t, model.AccessPublic, survey.Access)
	assert.False(t, survey.IsPublished)
	assert.Zero(t, survey.TotalPoints)
	require.NotNil(t, survey.UserID)
	assert.EqualValues(t, 3, *survey.UserID)
}

func TestUpdateSurveyPatchesOnlyGivenFields(t *testing.T) {
	db := newTestDB(t)
	svc := newSurveyService(db)
	ctx := context.Background()

	survey, err := svc.CreateSurvey(1, SurveyRequest{Name: strPtr("Original"), Description: strPtr("Desc")})
	require.NoError(t, err)

	updated, err := svc.UpdateSurvey(ctx, survey.ID, SurveyRequest{IsPublished: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Name)
	assert.Equal(t, "Desc", updated.Description)
	assert.True(t, updated.IsPublished)

	_, err = svc.UpdateSurvey(ctx, "no-such-survey", SurveyRequest{})
	assert.ErrorIs(t, err, util.ErrSurveyNotFound)
}

func TestGetFormRequiresPublication(t *testing.T) {
	db := newTestDB(t)
	svc := newSurveyService(db)
	ctx := context.Background()

	survey, err := svc.CreateSurvey(1, SurveyRequest{})
	require.NoError(t, err)

	_, err = svc.GetForm(ctx, survey.ID)
	assert.ErrorIs(t, err, util.ErrSurveyNotAvailable)

	_, err = svc.UpdateSurvey(ctx, survey.ID, SurveyRequest{IsPublished: boolPtr(true)})
	require.NoError(t, err)

	form, err := svc.GetForm(ctx, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, survey.ID, form.ID)

	_, err = svc.GetForm(ctx, "no-such-survey")
	assert.ErrorIs(t, err, util.ErrSurveyNotFound)
}

func TestGetSurveyOrdersQuestions(t *testing.T) {
	db := newTestDB(t)
	surveys := newSurveyService(db)
	questions := newQuestionService(db)
	ctx := context.Background()

	survey, err := surveys.CreateSurvey(1, SurveyRequest{})
	require.NoError(t, err)

	// Insert out of order; the form must come back position-sorted.
	first, err := questions.CreateQuestion(ctx, survey.ID, CreateQuestionRequest{Position: 1, Type: model.TypeText, Name: "B"})
	require.NoError(t, err)
	second, err := questions.CreateQuestion(ctx, survey.ID, CreateQuestionRequest{Position: 1, Type: model.TypeText, Name: "A"})
	require.NoError(t, err)

	loaded, err := surveys.GetSurvey(survey.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, second.ID, loaded.Questions[0].ID)
	assert.Equal(t, first.ID, loaded.Questions[1].ID)
}

func TestIsOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newSurveyService(db)

	survey, err := svc.CreateSurvey(5, SurveyRequest{})
	require.NoError(t, err)

	ok, err := svc.IsOwner(survey.ID, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsOwner(survey.ID, 6)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.IsOwner("no-such-survey", 5)
	assert.ErrorIs(t, err, util.ErrSurveyNotFound)
}

func TestDeleteSurveyCascades(t *testing.T) {
	db := newTestDB(t)
	surveys := newSurveyService(db)
	questions := newQuestionService(db)
	ctx := context.Background()

	survey, err := surveys.CreateSurvey(1, SurveyRequest{})
	require.NoError(t, err)
	q, err := questions.CreateQuestion(ctx, survey.ID, CreateQuestionRequest{Position: 1, Type: model.TypeRadio})
	require.NoError(t, err)

	require.NoError(t, surveys.DeleteSurvey(ctx, survey.ID))

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("survey_id = ?", survey.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&model.QuestionOption{}).Where("question_id = ?", q.ID).Count(&count).Error)
	assert.Zero(t, count)

	err = surveys.DeleteSurvey(ctx, survey.ID)
	assert.ErrorIs(t, err, util.ErrSurveyNotFound)
}
