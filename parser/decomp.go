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
	"github.com/krotik/cflow/fsm"
	"github.com/krotik/cflow/node"
)

/*
mapFSMToDecomp maps the FSM state a sub-builder just transitioned into
onto the decomposition kind the resulting node should carry. The
ranges below mirror the FSM state declaration order in package fsm
exactly (each construct's states are declared contiguously), the same
way the reference grammar keys this off ordinal ranges of its own
state enum.
*/
func mapFSMToDecomp(state fsm.State) node.DecompKind {
	switch {
	case state >= fsm.StatementStart && state <= fsm.StatementEnd:
		return node.P1

	case state >= fsm.IfStart && state <= fsm.IfElseEnd:
		switch {
		case state == fsm.IfStart:
			return node.D0
		case state > fsm.IfStart && state <= fsm.IfThenEnd:
			return node.D0End
		case state == fsm.IfElse:
			return node.D1
		default:
			return node.D1End
		}

	case state >= fsm.WhileStart && state <= fsm.WhileEnd:
		if state == fsm.WhileStart {
			return node.D2
		}
		return node.D2End

	case state >= fsm.DoWhileStart && state <= fsm.DoWhileEnd:
		if state == fsm.DoWhileStart {
			return node.D3
		}
		return node.D3End

	case state >= fsm.ForStart && state <= fsm.ForEnd:
		switch {
		case state >= fsm.ForStart && state <= fsm.ForInitEnd:
			return node.P1
		case state >= fsm.ForCond && state <= fsm.ForCondEnd:
			return node.D0
		default:
			return node.D0End
		}

	case state >= fsm.FuncStart && state <= fsm.FuncEnd:
		if state == fsm.FuncStart {
			return node.F1
		}
		return node.F1End
	}

	return node.P1
}
