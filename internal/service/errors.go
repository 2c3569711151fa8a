package service

import "errors"

// Expected, recoverable conditions reported to the caller.
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrEmptyComment   = errors.New("comment text must not be empty")
	ErrEmptyQuestion  = errors.New("question must not be empty")
	ErrEmailTaken     = errors.New("email already exists")
	ErrInvalidLogin   = errors.New("invalid credentials")
)

// ErrCommentAuthorMissing indicates corrupted state: a comment whose
// author cannot be resolved. It is surfaced as a failure, never
// papered over with a placeholder name.
var ErrCommentAuthorMissing = errors.New("comment author cannot be resolved")
