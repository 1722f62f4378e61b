package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/scene"
	"github.com/df07/go-raytracer-core/pkg/serialization"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Write a built-in scene as JSON.
func Example(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := scene.NewBuiltinScene(ctx.String("scene"), core.NewIDGenerator())
	if err != nil {
		return err
	}

	return writeScene(ctx, sc)
}

// Display the node counts of a scene.
func Info(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene argument")
	}

	sc, err := openScene(ctx.Args().First(), serialization.DefaultDeserializeOptions())
	if err != nil {
		return err
	}

	stats, err := scene.CollectStats(sc)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "scene information:\n%s", stats.Table())
	return nil
}

// Read a scene file and write it back in canonical form.
func Normalize(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	opts := serialization.DefaultDeserializeOptions()
	if ctx.Bool("strict") {
		opts = serialization.StrictDeserializeOptions()
	}

	sc, err := openScene(ctx.Args().First(), opts)
	if err != nil {
		return err
	}

	return writeScene(ctx, sc)
}

// List built-in scenes and the scene files found in a directory.
func List(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	groups, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Group", "ID", "Name", "Description"})
	for _, group := range groups {
		for _, info := range group.Scenes {
			table.Append([]string{group.Name, info.ID, info.Name, info.Description})
		}
	}
	table.Render()

	return nil
}

// openScene loads a scene file, or builds a built-in scene when name is not a
// JSON file
func openScene(name string, opts serialization.DeserializeOptions) (*scene.Scene, error) {
	if !strings.HasSuffix(name, ".json") {
		return scene.NewBuiltinScene(name, core.NewIDGenerator())
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logger.Infof("reading scene: %s", name)
	sc, err := serialization.Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return sc, nil
}

// writeScene serializes sc to the file named by the out flag, or to the app
// writer when it is empty
func writeScene(ctx *cli.Context, sc *scene.Scene) error {
	out := ctx.String("out")
	if out == "" {
		return serialization.Encode(ctx.App.Writer, sc)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	logger.Noticef("writing scene: %s", out)
	if err := serialization.Encode(f, sc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
