package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/skillshare/skilladmin/internal/cli"
	"github.com/skillshare/skilladmin/internal/config"
	"github.com/skillshare/skilladmin/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
