package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/build"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/config"
)

func main() {
	configPath := flag.String("config", "stubgen.yaml", "path to the stubgen config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not loaded, using system env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.ApplyEnvOverrides(cfg)

	b, err := build.NewBuilder(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := b.Build(); err != nil {
		log.Fatal(err)
	}
}
