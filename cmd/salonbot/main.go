package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"salonbot/salon/app"
)

func main() {
	// Local development keeps secrets in .env; absence is fine.
	_ = godotenv.Load()

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "config.yaml"
	}
	configPath := flag.String("config", defaultPath, "path to YAML config")
	flag.Parse()

	if err := app.Run(*configPath); err != nil {
		log.Fatalf("salonbot: %v", err)
	}
}
