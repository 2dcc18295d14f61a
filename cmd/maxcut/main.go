// SPDX-License-Identifier: MIT
// Command maxcut evaluates the Max-Cut QAOA cost layer over a simulated
// process group.
//
//	maxcut solve --topology cycle --vertices 8 --processes 4 --gamma 0.5
//	maxcut solve --config run.yaml --output yaml
//	maxcut version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
