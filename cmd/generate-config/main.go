package main

import (
	"os"

	"gopkg.in/yaml.v2"
	"memorygame-server/internal/config"
	"memorygame-server/pkg/deck"
)

// prints a config.yaml with every default filled in
func main() {
	cfg := config.DefaultConfig()
	if len(cfg.Game.Symbols) == 0 {
		cfg.Game.Symbols = deck.SymbolsToStrings(deck.DefaultSymbols())
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		panic(err)
	}
}
