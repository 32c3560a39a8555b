package main

import (
	"log"

	"github.com/nevisdale/nescore/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
