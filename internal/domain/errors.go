package domain

import "errors"

// ErrNoPaths is returned when a workflow is started without any file.
var ErrNoPaths = errors.New("no paths given")

// ErrNotRegularFile is reported for directories, devices and other paths
// that cannot be rewritten in place.
var ErrNotRegularFile = errors.New("not a regular file")
