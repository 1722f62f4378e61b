package cmd

import (
	"github.com/urfave/cli"
)

// NewApp assembles the command line application. The default version flag
// is renamed so that -v stays free for verbose logging.
func NewApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer-core"
	app.Usage = "inspect, convert and probe serialized ray tracing scenes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "one of debug, info, notice, warning, error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "example",
			Usage: "write a built-in scene as JSON",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "simple",
					Usage: "built-in scene to write",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file; stdout if empty",
				},
			},
			Action: Example,
		},
		{
			Name:      "info",
			Usage:     "display the node counts of a scene",
			ArgsUsage: "scene.json|builtin-scene",
			Action:    Info,
		},
		{
			Name:  "normalize",
			Usage: "read a scene and write it back in canonical form",
			Description: `
Load a scene file, rebuild the scene graph and serialize it again. Records are
written once per object with children before their parents; unreferenced
records are dropped.`,
			ArgsUsage: "scene.json",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "strict",
					Usage: "reject unknown fields and unreferenced records",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file; stdout if empty",
				},
			},
			Action: Normalize,
		},
		{
			Name:      "probe",
			Usage:     "trace a single ray through a scene and report the closest hit",
			ArgsUsage: "scene.json|builtin-scene",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "origin",
					Value: "0,0,0",
					Usage: "ray origin as x,y,z",
				},
				cli.StringFlag{
					Name:  "direction",
					Value: "0,0,-1",
					Usage: "ray direction as x,y,z",
				},
				cli.Float64Flag{
					Name:  "tmin",
					Value: 0.001,
					Usage: "closest accepted hit distance",
				},
				cli.Float64Flag{
					Name:  "tmax",
					Value: 1e9,
					Usage: "farthest accepted hit distance",
				},
				cli.Float64Flag{
					Name:  "time",
					Usage: "ray time within the shutter interval",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for sampling the scattered direction",
				},
			},
			Action: Probe,
		},
		{
			Name:  "list",
			Usage: "list built-in scenes and the scene files in a directory",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir, d",
					Value: "scenes",
					Usage: "directory to scan for *.json scenes",
				},
			},
			Action: List,
		},
		{
			Name:  "serve",
			Usage: "serve scenes, statistics and pixel inspection over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.StringFlag{
					Name:  "dir, d",
					Value: "scenes",
					Usage: "directory holding *.json scenes",
				},
			},
			Action: Serve,
		},
	}

	return app
}
