package main

import (
	"context"
	"log"
	"os"

	"github.com/aigymlabs/fitcoach/internal/buildinfo"
	"github.com/aigymlabs/fitcoach/internal/server"
	"github.com/aigymlabs/fitcoach/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
