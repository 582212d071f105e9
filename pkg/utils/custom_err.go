package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPromptNotFound     = errors.New("prompt not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyModerated   = errors.New("submission already moderated")
	ErrInvalidDecision    = errors.New("invalid moderation decision")

	ErrPostNotFound = errors.New("blog post not found")
	ErrSlugTaken    = errors.New("slug already exists")
	ErrInvalidSlug  = errors.New("invalid slug")

	ErrServiceNotFound   = errors.New("service not found")
	ErrRequestNotFound   = errors.New("service request not found")
	ErrIllegalTransition = errors.New("illegal status transition")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
