package main

import (
	"log"

	"github.com/Osvaldowo/EncontradOS/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("app failed: %v", err)
	}
}
