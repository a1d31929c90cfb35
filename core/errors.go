package core

import "errors"

// Domain errors
var (
	// ErrNoProducts indicates the catalog yielded zero unique products.
	// Synthesis cannot proceed: the row budget would divide by zero.
	ErrNoProducts = errors.New("catalog contains no unique products")

	// ErrModelNotReady indicates ranking was attempted before a trained
	// scorer was loaded. Recoverable: callers surface an empty state.
	ErrModelNotReady = errors.New("model not ready")

	// ErrScoringTimeout indicates the scorer did not answer within its deadline.
	ErrScoringTimeout = errors.New("scoring timed out")

	// ErrInvalidProduct indicates a Product failed validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidExample indicates a TrainingExample failed validation.
	ErrInvalidExample = errors.New("invalid training example")

	// ErrEmptyProductName indicates the product Name field is empty.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrUnknownCategory indicates a category outside the closed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidLabel indicates a relevance label other than 0 or 1.
	ErrInvalidLabel = errors.New("relevance label must be 0 or 1")

	// ErrEmptyQuery indicates a training example with an empty query string.
	ErrEmptyQuery = errors.New("query cannot be empty")
)
