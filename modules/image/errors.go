package image

import (
	"errors"

	"github.com/dmitrymomot/remindme/core"
)

// ErrMissingImage is returned when the upload has no "image" part.
var ErrMissingImage = core.Validation(errors.New("validation failed: image file is required"))
