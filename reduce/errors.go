package reduce

import (
	"errors"

	"github.com/sartorproj/goreduce/window"
)

var (
	// ErrInSample is returned when a horizon contains offsets that are
	// not strictly in the future relative to the cutoff. In-sample
	// predictions are not supported by reduction forecasters.
	ErrInSample = errors.New("in-sample predictions are not implemented")

	// ErrIncompatibleWindow is returned at fit time when the window
	// length and horizon together reach past the end of the series.
	ErrIncompatibleWindow = window.ErrIncompatible

	// ErrNotFitted is returned by Predict before a successful Fit.
	ErrNotFitted = errors.New("forecaster must be fitted before prediction")
)
