package manifest

import "errors"

// ErrInvalidManifest is returned when a manifest file exists but cannot be
// parsed as its expected format.
var ErrInvalidManifest = errors.New("invalid project manifest")
