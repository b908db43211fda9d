package scenario

import "errors"

var (
	ErrUnknownScenario = errors.New("scenario: unknown scenario")
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)
