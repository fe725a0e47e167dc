// Package main is the entry point of mdmaestro.
package main

import (
	"github.com/mdmaestro/mdmaestro/cmd"
	"github.com/mdmaestro/mdmaestro/config"
	"github.com/mdmaestro/mdmaestro/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
