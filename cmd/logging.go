package cmd

import (
	"github.com/df07/go-raytracer-core/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer-core")

// setupLogging applies --log-level first; -v and -vv only ever lower it.
func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}
