package util

import "errors"

var (
	ErrPermissionDenied     = errors.New("permission denied")
	ErrLanguageNotFound     = errors.New("language not found")
	ErrLanguageNotAssigned  = errors.New("you are not assigned to this language")
	ErrQuestionNotFound     = errors.New("test question not found")
	ErrTestAlreadyTaken     = errors.New("test already taken for this language")
	ErrLevelNotConfigured   = errors.New("level configuration error")
	ErrInvalidAudio         = errors.New("invalid audio file")
	ErrAudioRequired        = errors.New("audio file is required for listening questions")
	ErrUnsupportedStorage   = errors.New("unsupported storage type")
	ErrInvalidQuestionInput = errors.New("invalid test question")
)
