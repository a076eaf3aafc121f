package main

import (
	"flag"
	"log"
	"os"

	"gridflow/internal/app"
	_ "gridflow/internal/sims/overflow"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
