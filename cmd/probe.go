package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/log"
	"github.com/df07/go-raytracer-core/pkg/serialization"
	"github.com/urfave/cli"
)

// Trace a single ray through a scene and report the closest hit.
func Probe(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene argument")
	}

	origin, err := parseVec3(ctx.String("origin"))
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	direction, err := parseVec3(ctx.String("direction"))
	if err != nil {
		return fmt.Errorf("direction: %w", err)
	}
	if direction.Length() == 0 {
		return errors.New("direction: must be non-zero")
	}

	sc, err := openScene(ctx.Args().First(), serialization.DefaultDeserializeOptions())
	if err != nil {
		return err
	}

	ray := core.NewRayAtTime(origin, direction, ctx.Float64("time"))
	hit, isHit := sc.Root.Hit(ray, ctx.Float64("tmin"), ctx.Float64("tmax"))
	if !isHit {
		fmt.Fprintf(ctx.App.Writer, "miss; sky color %v\n", sc.Sky.Color(direction.Normalize()))
		return nil
	}

	materialID := core.NoID
	if hit.Material != nil {
		materialID = hit.Material.ID()
	}
	fmt.Fprintf(ctx.App.Writer, "hit t=%g point=%v normal=%v front=%t material=%d\n",
		hit.T, hit.Point, hit.Normal, hit.FrontFace, materialID)

	if hit.Material != nil {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(ctx.Int64("seed"))))
		scatter, scattered := hit.Material.Scatter(ray, hit, sampler)
		switch {
		case !scattered:
			fmt.Fprintf(ctx.App.Writer, "absorbed; emitted %v\n", hit.Material.Emitted(hit))
		case scatter.IsSpecular():
			fmt.Fprintf(ctx.App.Writer, "specular scatter toward %v attenuation %v\n",
				scatter.Scattered.Direction, scatter.Attenuation)
		default:
			fmt.Fprintf(ctx.App.Writer, "diffuse scatter toward %v pdf=%g attenuation %v\n",
				scatter.Scattered.Direction, scatter.PDF, scatter.Attenuation)
		}
	}

	if log.IsEnabled(log.Info) {
		logger.Infof("sampling density toward the scene: %g", sc.Root.PDFValue(origin, direction))
	}
	return nil
}

// parseVec3 reads a vector written as "x,y,z"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}

	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}
