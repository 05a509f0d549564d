package service

import "errors"

// ErrInputMissing is returned when a flow is triggered without its required
// input (no image selected, empty chat message). Handlers map it to a 400.
var ErrInputMissing = errors.New("required input missing")
