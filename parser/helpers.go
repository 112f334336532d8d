/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"github.com/krotik/cflow/node"
	"github.com/krotik/cflow/token"
)

/*
lastTokenOf returns the last token accumulated into n. It is only ever
called on nodes known to carry at least one token (every sub-builder
appends the opener token before any path that later reads it back).
*/
func lastTokenOf(n *node.Node) token.Token {
	return n.Tokens[len(n.Tokens)-1]
}

/*
lastLineOf returns the source line of the last token accumulated into
n, used to stamp synthetic empty-body placeholder tokens.
*/
func lastLineOf(n *node.Node) int {
	if len(n.Tokens) == 0 {
		return 0
	}
	return n.Tokens[len(n.Tokens)-1].Line
}
