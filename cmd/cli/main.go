package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/artspace/internal/cli"
	"github.com/dmitrijs2005/artspace/internal/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	cli.NewApp(ctx, cfg).Run(ctx)

}
