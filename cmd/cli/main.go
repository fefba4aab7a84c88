package main

import (
	"context"

	"github.com/MemberTrackr/MT-Backend/internal/client/cli"
	"github.com/MemberTrackr/MT-Backend/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
