// SPDX-License-Identifier: EPL-2.0

package audioutils

import "errors"

var (
	ErrFileExists        = errors.New("output file exists; pass overwrite to replace it")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
)
