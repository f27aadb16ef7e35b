package pipeline

import (
	"errors"
	"fmt"

	"github.com/user/storeshots/pkg/colorutil"
	"github.com/user/storeshots/pkg/curves"
	"github.com/user/storeshots/pkg/profile"
)

// Error taxonomy for asset generation. Use errors.Is to classify failures.
var (
	// ErrImageDecode means a source or overlay file is missing or unreadable.
	ErrImageDecode = errors.New("image decode failed")
	// ErrRasterEngine means a drawing or compositing step failed.
	ErrRasterEngine = errors.New("raster engine failure")
	// ErrInvalidRequest means a required request field is missing.
	ErrInvalidRequest = errors.New("invalid asset request")

	ErrInvalidColorFormat       = colorutil.ErrInvalidColorFormat
	ErrUnsupportedDeviceProfile = profile.ErrUnsupportedDeviceProfile
	ErrDegenerateGeometry       = curves.ErrDegenerateGeometry
)

// StageError records which stage of an asset failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// WrapStage wraps err with the stage name. A nil err returns nil.
func WrapStage(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
