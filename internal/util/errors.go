package util

import "errors"

var (
	ErrSurveyNotFound     = errors.New("survey not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrResponseNotFound   = errors.New("response not found")
	ErrSurveyNotAvailable = errors.New("survey is not available")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrInvalidPosition     = errors.New("position must be positive")
	ErrDuplicatePositions  = errors.New("question options cannot have duplicate positions")
	ErrTextQuestionOptions = errors.New("text question cannot have options")
	ErrTooManyCorrect      = errors.New("there can be only one correct option for a radio question")
	ErrWrongUpdateVariant  = errors.New("update payload does not match question type")
)

// IsInvalidInput reports whether err belongs to the caller-error class
// that maps to a 400 rather than a 404/500.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidPosition) ||
		errors.Is(err, ErrDuplicatePositions) ||
		errors.Is(err, ErrTextQuestionOptions) ||
		errors.Is(err, ErrTooManyCorrect) ||
		errors.Is(err, ErrWrongUpdateVariant)
}

// IsNotFound reports whether err signals a missing target entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSurveyNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrResponseNotFound)
}
