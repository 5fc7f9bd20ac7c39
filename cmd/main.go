package main

import (
	"os"

	"github.com/soundprediction/herorag/cmd/herorag"
)

func main() {
	if err := herorag.Execute(); err != nil {
		os.Exit(1)
	}
}
