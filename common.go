// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmmlab

import (
	"encoding/json"
	"io"

	"github.com/golang/glog"
)

// Fatal logs the error and exits when err is not nil.
func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
