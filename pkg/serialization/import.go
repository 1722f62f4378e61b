package serialization

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/scene"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

type entry struct {
	record record
	index  int
}

// importer rebuilds live objects from records on demand. Every ID is built at
// most once, so objects shared in the document stay shared in the graph.
type importer struct {
	opts       DeserializeOptions
	entries    map[core.ID]entry
	built      map[core.ID]any
	inProgress map[core.ID]bool
}

func newImporter(objects []Object, opts DeserializeOptions) (*importer, error) {
	im := &importer{
		opts:       opts,
		entries:    make(map[core.ID]entry),
		built:      make(map[core.ID]any),
		inProgress: make(map[core.ID]bool),
	}

	for i := range objects {
		rec, err := objects[i].record()
		if errors.Is(err, errNoKind) && opts.UnknownFields == Tolerate {
			logger.Warningf("objects[%d]: skipping record of unknown kind", i)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: %w", i, malformed(core.NoID, err))
		}

		ids := rec.ids()
		if len(ids) == 0 {
			return nil, fmt.Errorf("objects[%d]: %w", i, &Error{Kind: ErrMalformedRecord, Actual: rec.kind(), Err: errNoID})
		}
		for index, id := range ids {
			if id == core.NoID {
				return nil, fmt.Errorf("objects[%d]: %w", i, &Error{Kind: ErrMalformedRecord, Actual: rec.kind(), Err: ErrReservedID})
			}
			if _, exists := im.entries[id]; exists {
				return nil, fmt.Errorf("objects[%d]: %w", i, malformed(id, ErrDuplicateID))
			}
			im.entries[id] = entry{record: rec, index: index}
		}
	}

	return im, nil
}

// resolve returns the object with the given ID, building it first if needed
func (im *importer) resolve(id, referrer core.ID, want role) (any, error) {
	e, ok := im.entries[id]
	if !ok {
		return nil, &Error{Kind: ErrUnresolvedReference, ID: id, Referrer: referrer, Role: string(want)}
	}
	if e.record.role() != want {
		return nil, &Error{Kind: ErrTypeMismatch, ID: id, Referrer: referrer, Role: string(want), Actual: e.record.kind()}
	}
	if obj, ok := im.built[id]; ok {
		return obj, nil
	}
	if im.inProgress[id] {
		return nil, &Error{Kind: ErrCyclicReference, ID: id, Referrer: referrer, Role: string(want)}
	}

	im.inProgress[id] = true
	obj, err := e.record.build(im, id, e.index)
	delete(im.inProgress, id)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", e.record.kind(), id, err)
	}

	im.built[id] = obj
	return obj, nil
}

// target picks the ID a reference names for the index-th object of a record
func target(r IDReference, referrer core.ID, index, count int, want role) (core.ID, error) {
	id, err := r.at(index, count)
	if err != nil {
		return core.NoID, &Error{Kind: ErrMalformedRecord, ID: referrer, Role: string(want), Err: err}
	}
	return id, nil
}

func (im *importer) node(r IDReference, referrer core.ID, index, count int) (geometry.Hittable, error) {
	id, err := target(r, referrer, index, count, roleNode)
	if err != nil {
		return nil, err
	}
	obj, err := im.resolve(id, referrer, roleNode)
	if err != nil {
		return nil, err
	}
	return obj.(geometry.Hittable), nil
}

func (im *importer) material(r IDReference, referrer core.ID, index, count int) (material.Material, error) {
	id, err := target(r, referrer, index, count, roleMaterial)
	if err != nil {
		return nil, err
	}
	obj, err := im.resolve(id, referrer, roleMaterial)
	if err != nil {
		return nil, err
	}
	return obj.(material.Material), nil
}

func (im *importer) texture(r IDReference, referrer core.ID, index, count int) (texture.Texture, error) {
	id, err := target(r, referrer, index, count, roleTexture)
	if err != nil {
		return nil, err
	}
	obj, err := im.resolve(id, referrer, roleTexture)
	if err != nil {
		return nil, err
	}
	return obj.(texture.Texture), nil
}

// unreferenced lists the IDs that no entry point reaches, in ascending order
func (im *importer) unreferenced() []core.ID {
	var ids []core.ID
	for id := range im.entries {
		if _, ok := im.built[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ToScene rebuilds the live scene. It returns the complete scene or the first
// error, never a partial scene.
func (s *Scene) ToScene(opts DeserializeOptions) (*scene.Scene, error) {
	im, err := newImporter(s.Objects, opts)
	if err != nil {
		return nil, err
	}

	configuration, err := im.resolve(s.ConfigurationID, core.NoID, roleConfiguration)
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	camera, err := im.resolve(s.CameraID, core.NoID, roleCamera)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	sky, err := im.resolve(s.SkyID, core.NoID, roleSky)
	if err != nil {
		return nil, fmt.Errorf("sky: %w", err)
	}
	root, err := im.resolve(s.RootNodeID, core.NoID, roleNode)
	if err != nil {
		return nil, fmt.Errorf("root node: %w", err)
	}

	if unreferenced := im.unreferenced(); len(unreferenced) > 0 {
		if opts.UnreferencedRecords == Reject {
			return nil, malformed(unreferenced[0], ErrUnreferencedRecord)
		}
		logger.Warningf("skipping %d unreferenced record(s): %v", len(unreferenced), unreferenced)
	}

	logger.Debugf("imported %d records into %d objects", len(s.Objects), len(im.built))

	return scene.New(
		configuration.(*scene.Configuration),
		camera.(*scene.Camera),
		sky.(*scene.Sky),
		root.(geometry.Hittable),
	), nil
}
