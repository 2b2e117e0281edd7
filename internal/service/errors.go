package service

import "errors"

var (
	ErrConflict  = errors.New("conflict")          // 400, duplicate row or association
	ErrReference = errors.New("invalid reference") // 400, payload points at a missing entity
)
