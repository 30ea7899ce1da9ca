package main

import (
	"errors"
	"log"
	"os"

	"projetos/cmd"
)

func main() {
	logger := log.New(os.Stderr, "[cmd] ", log.LstdFlags)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrNoCommand) {
			logger.Println(err.Error())
		}
		os.Exit(1)
	}
}
