// Command pconcat runs one external command per stdin line, bounded at
// --parallel concurrent processes, and concatenates their stdout in input
// order.
package main

import (
	"context"

	"github.com/allada/pconcat/cli"
	"github.com/allada/pconcat/config"
	"github.com/allada/pconcat/source/proc"
	"github.com/allada/pconcat/task"
)

func main() {
	cli.Main("pconcat", func(_ context.Context, _ *config.Config) (task.Parser, error) {
		return proc.Parse, nil
	})
}
