package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsqlite/studentquery/internal/studentquery"
	"github.com/nsqlite/studentquery/internal/studentquery/config"
)

func main() {
	cfg := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := studentquery.Run(ctx, cfg, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		log.Fatal(err)
	}
}
