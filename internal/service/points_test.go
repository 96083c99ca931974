package service

import (
	"testing"

	"survey_backend/internal/model"
	"survey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptionSet(t *testing.T) {
	tests := []struct {
		name    string
		qType   model.QuestionType
		inputs  []QuestionOptionInput
		wantErr error
		want    []model.QuestionOption
	}{
		{
			name:  "sparse positions re-rank densely",
			qType: model.TypeCheckbox,
			inputs: []QuestionOptionInput{
				{Position: 7, Text: "C"},
				{Position: 2, Text: "A", IsCorrect: true, Points: 1},
				{Position: 4, Text: "B"},
			},
			want: []model.QuestionOption{
				{Position: 1, Text: "A", IsCorrect: true, Points: 1},
				{Position: 2, Text: "B"},
				{Position: 3, Text: "C"},
			},
		},
		{
			name:  "duplicate positions rejected",
			qType: model.TypeCheckbox,
			inputs: []QuestionOptionInput{
				{Position: 1, Text: "A"},
				{Position: 1, Text: "B"},
			},
			wantErr: util.ErrDuplicatePositions,
		},
		{
			name:  "radio allows one correct option",
			qType: model.TypeRadio,
			inputs: []QuestionOptionInput{
				{Position: 1, Text: "A", IsCorrect: true, Points: 2},
				{Position: 2, Text: "B"},
			},
			want: []model.QuestionOption{
				{Position: 1, Text: "A", IsCorrect: true, Points: 2},
				{Position: 2, Text: "B"},
			},
		},
		{
			name:  "radio rejects two correct options",
			qType: model.TypeRadio,
			inputs: []QuestionOptionInput{
				{Position: 1, Text: "A", IsCorrect: true},
				{Position: 2, Text: "B", IsCorrect: true},
			},
			wantErr: util.ErrTooManyCorrect,
		},
		{
			name:  "checkbox allows several correct options",
			qType: model.TypeCheckbox,
			inputs: []QuestionOptionInput{
				{Position: 1, Text: "A", IsCorrect: true, Points: 2},
				{Position: 2, Text: "B", IsCorrect: true, Points: 3},
			},
			want: []model.QuestionOption{
				{Position: 1, Text: "A", IsCorrect: true, Points: 2},
				{Position: 2, Text: "B", IsCorrect: true, Points: 3},
			},
		},
		{
			name:   "empty input yields empty set",
			qType:  model.TypeCheckbox,
			inputs: nil,
			want:   []model.QuestionOption{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildOptionSet(tt.qType, tt.inputs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorrectOptionPoints(t *testing.T) {
	options := []model.QuestionOption{
		{IsCorrect: true, Points: 2},
		{IsCorrect: false, Points: 100},
		{IsCorrect: true, Points: 3},
	}
	assert.Equal(t, 5, correctOptionPoints(options))
	assert.Zero(t, correctOptionPoints(nil))
}

func TestClampQuestionPosition(t *testing.T) {
	db := newTestDB(t)
	survey := createSurvey(t, db)

	pos, err := clampQuestionPosition(db, survey.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos, "empty survey accepts position 1")

	pos, err = clampQuestionPosition(db, survey.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, pos, "empty survey clamps everything to 1")

	require.NoError(t, db.Create(&model.Question{SurveyID: survey.ID, Position: 1, Type: model.TypeText}).Error)
	require.NoError(t, db.Create(&model.Question{SurveyID: survey.ID, Position: 2, Type: model.TypeText}).Error)

	pos, err = clampQuestionPosition(db, survey.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, pos, "positions inside the range pass through")

	pos, err = clampQuestionPosition(db, survey.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, pos, "max+1 is still a valid target")

	pos, err = clampQuestionPosition(db, survey.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, pos, "past the end clamps to max+1")

	for _, bad := range []int{0, -1} {
		_, err = clampQuestionPosition(db, survey.ID, bad)
		assert.ErrorIs(t, err, util.ErrInvalidPosition)
	}
}
