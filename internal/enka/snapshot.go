package enka

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadSnapshot reads a uid response previously saved from Enka.Network.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open enka snapshot: %w", err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("enka snapshot %s: %w", path, err)
	}
	return s, nil
}

func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &s, nil
}
