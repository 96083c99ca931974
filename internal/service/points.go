package service

import (
	"sort"

	"survey_backend/internal/model"
	"survey_backend/internal/util"
)

// QuestionOptionInput is one row of a wholesale option replacement.
type QuestionOptionInput struct {
	Position  int    `json:"position" binding:"required,min=1"`
	IsCorrect bool   `json:"isCorrect"`
	Points    int    `json:"points"`
	Text      string `json:"text"`
}

// buildOptionSet validates a replacement payload and turns it into the
// rows that will be stored: duplicate positions are rejected, a RADIO
// question may carry at most one correct option, and the accepted set
// is re-ranked densely 1..M in requested order so option positions
// always form a gap-free sequence after commit.
func buildOptionSet(qType model.QuestionType, inputs []QuestionOptionInput) ([]model.QuestionOption, error) {
	seen := make(map[int]bool, len(inputs))
	correct := 0
	for _, in := range inputs {
		if seen[in.Position] {
			return nil, util.ErrDuplicatePositions
		}
		seen[in.Position] = true
		if in.IsCorrect {
			correct++
		}
	}

	if qType == model.TypeRadio && correct > 1 {
		return nil, util.ErrTooManyCorrect
	}

	ranked := make([]QuestionOptionInput, len(inputs))
	copy(ranked, inputs)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Position < ranked[j].Position })

	options := make([]model.QuestionOption, len(ranked))
	for i, in := range ranked {
		options[i] = model.QuestionOption{
			Position:  i + 1,
			IsCorrect: in.IsCorrect,
			Points:    in.Points,
			Text:      in.Text,
		}
	}
	return options, nil
}

// correctOptionPoints recomputes a choice question's point value: the
// sum over its correct options. TEXT questions never go through here,
// their points are editor-supplied.
func correctOptionPoints(options []model.QuestionOption) int {
	sum := 0
	for _, o := range options {
		if o.IsCorrect {
			sum += o.Points
		}
	}
	return sum
}
