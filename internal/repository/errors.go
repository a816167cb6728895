package repository

import "errors"

// Sentinel errors returned by repositories; services translate these into the
// transport-facing error taxonomy.
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrRequestNotFound     = errors.New("vacation request not found")
	ErrInsufficientBalance = errors.New("not enough remaining vacation days")
	ErrAlreadyProcessed    = errors.New("request has already been processed")
)
