package models

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrTransport           = errors.New("transport failure")
	ErrServerRejected      = errors.New("rejected by server")
	ErrTimeout             = errors.New("request timed out")
	ErrFetch               = errors.New("fetch failed")
	ErrDuplicateSubmission = errors.New("submission already in progress")
	ErrInvalidDraft        = errors.New("complaint draft is incomplete")
	ErrAuthRejected        = errors.New("authentication rejected")
	ErrUnknownView         = errors.New("unknown map view")
)
