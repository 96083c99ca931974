package service

import (
	"survey_backend/internal/repository"
	"survey_backend/internal/util"

	"gorm.io/gorm"
)

// clampQuestionPosition resolves a requested position against the
// survey's current layout: anything past the end collapses to
// max+1, anything below 1 is rejected. Runs inside the caller's
// transaction so the max read and the following shift see the same
// state.
func clampQuestionPosition(tx *gorm.DB, surveyID string, requested int) (int, error) {
	if requested < 1 {
		return 0, util.ErrInvalidPosition
	}

	max, err := repository.MaxQuestionPosition(tx, surveyID)
	if err != nil {
		return 0, err
	}

	if requested > max+1 {
		return max + 1, nil
	}
	return requested, nil
}

// openQuestionSlot frees the target position by pushing every question
// at or after it one step down the list.
func openQuestionSlot(tx *gorm.DB, surveyID string, position int) error {
	return repository.ShiftQuestionPositions(tx, surveyID, position, 0, 1)
}

// moveQuestion relocates one question and closes the gap it leaves
// behind: moving up shifts [new, old) by +1, moving down shifts
// (old, new] by -1, then the moved question takes the target slot.
// Applying the same move with the arguments swapped restores the
// original layout.
func moveQuestion(tx *gorm.DB, surveyID, questionID string, oldPosition, newPosition int) error {
	if oldPosition == newPosition {
		return nil
	}

	var err error
	if newPosition < oldPosition {
		err = repository.ShiftQuestionPositions(tx, surveyID, newPosition, oldPosition, 1)
	} else {
		err = repository.ShiftQuestionPositions(tx, surveyID, oldPosition+1, newPosition+1, -1)
	}
	if err != nil {
		return err
	}

	return repository.SetQuestionPosition(tx, questionID, newPosition)
}
