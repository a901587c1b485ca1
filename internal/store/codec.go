package store

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// codec turns the store document into bytes and back.
type codec interface {
	marshal(doc document) ([]byte, error)
	unmarshal(b []byte, doc *document) error
}

// codecFor picks a codec from the file extension; anything but .toml is JSON.
func codecFor(path string) codec {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlCodec{}
	}
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) marshal(doc document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (jsonCodec) unmarshal(b []byte, doc *document) error { return json.Unmarshal(b, doc) }

type tomlCodec struct{}

func (tomlCodec) marshal(doc document) ([]byte, error) { return toml.Marshal(doc) }

func (tomlCodec) unmarshal(b []byte, doc *document) error { return toml.Unmarshal(b, doc) }
