package models

import (
	"github.com/nearbyfyi/ner/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Classifiers ClassifierRegistry
	Config      *config.Config
}
