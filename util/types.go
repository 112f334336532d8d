/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package util contains ambient helpers shared by the CFG core and its
// command-line driver: log-level filtering, file-backed source
// resolution, and diagnostic reporting.
package util

import "github.com/krotik/cflow/cerr"

/*
Logger is the external object to which the core and driver release
their log messages.
*/
type Logger interface {

	/*
		LogError adds a new error log message.
	*/
	LogError(v ...interface{})

	/*
		LogInfo adds a new info log message.
	*/
	LogInfo(v ...interface{})

	/*
		LogDebug adds a new debug log message.
	*/
	LogDebug(v ...interface{})

	/*
		LogDiagnostic adds a best-effort tokenizer/grammar/structural
		diagnostic, keeping its class, source line and offending token
		as separate fields rather than flattening it into one message.
	*/
	LogDiagnostic(d *cerr.Diagnostic)
}
