// Package errs defines the closed set of error causes shared across packages.
//
// Handlers match these sentinels with errors.Is instead of inspecting error
// types or messages. Any auth failure outside this set is treated as unknown
// and propagates to the caller.
package errs

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailExists = errors.New("email already exists")
var ErrMissingCredentials = errors.New("email and password are required")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
