package main

import (
	cmd "github.com/nearbyfyi/ner/cmd/ner"
	"github.com/nearbyfyi/ner/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting ner")
	cmd.Execute()
}
