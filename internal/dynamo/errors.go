package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for configuration and run setup.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidRun indicates a headless run was requested with an unusable
	// tick count or tick duration.
	ErrInvalidRun = errors.New("dynamo: invalid run configuration")

	// ErrAssetLoad indicates a texture could not be loaded.
	ErrAssetLoad = errors.New("dynamo: asset load failed")
)

// ParamError names the offending parameter of an ErrParameterBounds failure.
type ParamError struct {
	Param string
	Value any
	Want  string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s = %v: want %s", e.Param, e.Value, e.Want)
}

func (e *ParamError) Unwrap() error {
	return ErrParameterBounds
}
