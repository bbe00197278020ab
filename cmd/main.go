package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/TBOO-AI/agent/internal/app"
)

const appName = "saju_agent"

func main() {
	cfg, err := app.NewEnvConfig(appName)
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(appName, cfg)

	err1 := app.Run(ctx)
	if err1 != nil {
		panic(err1)
	}
}
