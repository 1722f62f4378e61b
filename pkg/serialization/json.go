package serialization

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/log"
	"github.com/df07/go-raytracer-core/pkg/scene"
)

var logger = log.New("serialization")

// Serialize writes s as an indented JSON document
func Serialize(s *scene.Scene) (string, error) {
	var b strings.Builder
	if err := Encode(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Deserialize reads a document written by Serialize using the default options
func Deserialize(text string) (*scene.Scene, error) {
	return DeserializeWithOptions(text, DefaultDeserializeOptions())
}

// DeserializeWithOptions reads a document with explicit strictness options
func DeserializeWithOptions(text string, opts DeserializeOptions) (*scene.Scene, error) {
	return Decode(strings.NewReader(text), opts)
}

// Encode streams the JSON form of s to w
func Encode(w io.Writer, s *scene.Scene) error {
	doc, err := FromScene(s)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return encodingFailure(core.NoID, err)
	}
	return nil
}

// Decode reads one document from r and rebuilds the scene it describes
func Decode(r io.Reader, opts DeserializeOptions) (*scene.Scene, error) {
	doc, err := DecodeDocument(r, opts)
	if err != nil {
		return nil, err
	}
	return doc.ToScene(opts)
}

// DecodeDocument reads the records of one document without building them
func DecodeDocument(r io.Reader, opts DeserializeOptions) (*Scene, error) {
	decoder := json.NewDecoder(r)
	if opts.UnknownFields == Reject {
		decoder.DisallowUnknownFields()
	}

	var doc Scene
	if err := decoder.Decode(&doc); err != nil {
		return nil, malformed(core.NoID, fmt.Errorf("decode: %w", err))
	}
	return &doc, nil
}
