package main

import (
	"context"

	"pastpresent-backend/cmd/pastpresent-cli/commands"
	"pastpresent-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
