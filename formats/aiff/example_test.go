// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audxform/formats/aiff"
)

// Example_errorHandling shows the error returned for data that is not AIFF.
func Example_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("Error:", err)
	}

	// Output:
	// Error: not an AIFF file
}
