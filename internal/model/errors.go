package model

import "errors"

// ErrUnknownMatchMode is returned when a configured match mode is not supported.
var ErrUnknownMatchMode = errors.New("unknown match mode")
