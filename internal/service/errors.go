package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrValidationNoFolderName    = errors.New("folder name must not be empty")
	ErrValidationNoPromptName    = errors.New("prompt name must not be empty")
	ErrValidationNoPromptContent = errors.New("prompt content must not be empty")
	ErrValidationNoChanges       = errors.New("no fields to update")
)
