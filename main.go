package main

import (
	"log"

	"github.com/leadscout/leadscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
