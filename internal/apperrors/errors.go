package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request cannot be applied to the current state of the resource.
var ErrConflict = errors.New("resource conflict")

// ErrUnauthorized indicates that the request lacks valid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure inside the application.
var ErrInternal = errors.New("internal error")
