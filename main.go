// Package main is the entry point for the quizthumb application.
package main

import (
	"github.com/quizthumb-cli/quizthumb/cmd"
	"github.com/quizthumb-cli/quizthumb/config"
	"github.com/quizthumb-cli/quizthumb/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
