package serialization

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// IDConstructor lists the IDs a record builds. A record with n IDs builds n
// objects. It is written as a bare integer when it holds one ID.
type IDConstructor []core.ID

// IDReference points at other records. Against a record building n objects
// it either holds one ID shared by all of them or exactly n IDs matched by
// index. It is written as a bare integer when it holds one ID.
type IDReference []core.ID

func single(id core.ID) IDConstructor { return IDConstructor{id} }

func ref(id core.ID) IDReference { return IDReference{id} }

func (c IDConstructor) MarshalJSON() ([]byte, error) {
	return marshalIDs(c)
}

func (c *IDConstructor) UnmarshalJSON(data []byte) error {
	ids, err := unmarshalIDs(data)
	*c = ids
	return err
}

func (r IDReference) MarshalJSON() ([]byte, error) {
	return marshalIDs(r)
}

func (r *IDReference) UnmarshalJSON(data []byte) error {
	ids, err := unmarshalIDs(data)
	*r = ids
	return err
}

// at returns the ID referenced by the index-th object of a record building count objects
func (r IDReference) at(index, count int) (core.ID, error) {
	switch len(r) {
	case 1:
		return r[0], nil
	case count:
		return r[index], nil
	case 0:
		return core.NoID, errors.New("reference is empty")
	default:
		return core.NoID, fmt.Errorf("reference lists %d ids for a record building %d objects", len(r), count)
	}
}

func marshalIDs(ids []core.ID) ([]byte, error) {
	if len(ids) == 1 {
		return json.Marshal(ids[0])
	}
	if ids == nil {
		ids = []core.ID{}
	}
	return json.Marshal([]core.ID(ids))
}

func unmarshalIDs(data []byte) ([]core.ID, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var ids []core.ID
		if err := json.Unmarshal(data, &ids); err != nil {
			return nil, err
		}
		return ids, nil
	}

	var id core.ID
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, err
	}
	return []core.ID{id}, nil
}
