package service

import "errors"

// ErrStage wraps the failure of a pipeline stage; the message names the stage.
var ErrStage = errors.New("pipeline stage failed")
