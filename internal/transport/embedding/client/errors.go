package client

import (
	"errors"
	"fmt"
)

var ErrEmptyEmbedding = errors.New("provider returned empty embedding")

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}
