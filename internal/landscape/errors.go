package landscape

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks synthesis parameters the pipeline cannot honor.
	ErrConfig = errors.New("landscape: invalid configuration")
	// ErrInstall marks a collaborator engine rejecting an install operation.
	ErrInstall = errors.New("landscape: install rejected by engine")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

func installErrorf(traitIndex int, op string, err error) error {
	return fmt.Errorf("%w: trait %d: %s: %v", ErrInstall, traitIndex, op, err)
}
