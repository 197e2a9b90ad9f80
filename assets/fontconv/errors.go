/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontconv

import (
	"errors"
	"fmt"
)

var (
	// ErrStagingDirMissing is the precondition failure of Run.
	ErrStagingDirMissing = errors.New("staging directory does not exist")

	errVerify = errors.New("woff2 output does not match source")
)

// StagingDirError reports a missing staging directory.
type StagingDirError struct {
	Dir string
}

func (e *StagingDirError) Error() string {
	return fmt.Sprintf("%s does not exist. Please run setup-fonts.sh first.", e.Dir)
}

// Unwrap makes errors.Is(err, ErrStagingDirMissing) hold.
func (e *StagingDirError) Unwrap() error {
	return ErrStagingDirMissing
}
