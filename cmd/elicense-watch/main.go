package main

import (
	"context"
	"os"

	"elicense-watch/cmd/elicense-watch/commands"
	"elicense-watch/lib/serviceutil"
	"elicense-watch/lib/telemetry"
)

func main() {
	ctx := context.Background()

	tel, err := telemetry.SetupFromEnv(ctx, "elicense-watch")
	if err == nil {
		defer tel.Shutdown(context.Background())
	} else if !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}

	commands.ExecuteContext(ctx)
}
