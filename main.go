// Package main is the entry point for the incread application.
package main

import (
	"github.com/incread/incread/cmd"
	"github.com/incread/incread/config"
	"github.com/incread/incread/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
