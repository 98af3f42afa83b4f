package main

import (
	"log"

	"UnrulyHuman/config"
	"UnrulyHuman/internal/storefront"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	storefront.Run(cfg)
}
