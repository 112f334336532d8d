/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"encoding/json"
	"fmt"

	"github.com/krotik/cflow/cerr"
)

/*
FileReport collects every diagnostic the core produced while building
the CFG for one source file. A non-empty Diagnostics slice does not
mean the file's graph is empty -- parsing is best-effort and partial
sub-graphs are still linked in (see DESIGN.md).
*/
type FileReport struct {
	Source      string
	Diagnostics []*cerr.Diagnostic
}

/*
Error renders the report as a human-readable summary, one diagnostic
per line prefixed with the source file name.
*/
func (fr *FileReport) Error() string {
	if len(fr.Diagnostics) == 0 {
		return fmt.Sprintf("%v: no diagnostics", fr.Source)
	}

	ret := ""
	for i, d := range fr.Diagnostics {
		if i > 0 {
			ret += "\n"
		}
		ret += fmt.Sprintf("%v: %v", fr.Source, d.Error())
	}
	return ret
}

/*
ToJSONObject returns this report as a JSON-serialisable map.
*/
func (fr *FileReport) ToJSONObject() map[string]interface{} {
	diags := make([]map[string]interface{}, len(fr.Diagnostics))
	for i, d := range fr.Diagnostics {
		diags[i] = map[string]interface{}{
			"class": string(d.Class),
			"line":  d.Token.Line,
			"token": d.Token.Sequence,
			"msg":   d.Msg,
		}
	}
	return map[string]interface{}{
		"source":      fr.Source,
		"diagnostics": diags,
	}
}

/*
MarshalJSON serialises this report into a JSON string.
*/
func (fr *FileReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(fr.ToJSONObject())
}
