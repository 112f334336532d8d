/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"flag"
	"fmt"

	"github.com/krotik/cflow/config"
	"github.com/krotik/common/timeutil"
)

/*
Watch re-runs graphPaths on a fixed schedule so a fixed list of source
files can be re-parsed as they change, without a manual re-invocation.
The schedule is a cron spec (e.g. "*/5 * * * * *" to run every 5
seconds); Watch blocks until interrupted.

Unlike Graph, Watch calls graphPaths directly rather than Graph itself:
Graph registers its flags on the global flag.CommandLine on every call,
which would panic ("flag redefined") the second time a cron tick fires.
*/
func Watch(cronspec string, paths ...string) error {
	cs, err := timeutil.NewCronSpec(cronspec)
	if err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", cronspec, err)
	}

	mode := outputText
	if config.Str(config.OutputFormat) == "dot" {
		mode = outputDot
	}

	cron := timeutil.NewCron()
	cron.Start()
	defer cron.Stop()

	done := make(chan struct{})

	cron.RegisterSpec(cs, func() {
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("[watch] rebuilding at %v", cron.NowFunc()))
		if err := graphPaths(paths, mode); err != nil {
			fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("[watch] error: %v", err))
		}
	})

	<-done // blocks until the process is interrupted (Ctrl-C) or killed
	return nil
}
