package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"outie/internal/config"
	"outie/internal/game"
)

func main() {
	path := flag.String("config", config.DefaultPath, "settings file (YAML)")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logFile := config.SetupLogging(cfg)
	log.Printf("config: %s", *path)

	err = game.RunDesktop(cfg)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "outie: %v\n", err)
		os.Exit(1)
	}
}
