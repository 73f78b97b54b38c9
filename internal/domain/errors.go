package domain

import "errors"

var (
	// ErrInvalidWeights signals a weight table that violates a design invariant.
	ErrInvalidWeights = errors.New("invalid scoring weights")
	// ErrRuleFailed signals a deal-breaker rule that errored or panicked during evaluation.
	ErrRuleFailed = errors.New("deal-breaker rule failed")
)
