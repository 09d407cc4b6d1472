package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for layout operations.
var (
	// ErrIncompleteLayout is returned by Export when Start or End is unset.
	ErrIncompleteLayout = errors.New("layout: start and end must both be set")

	// ErrInvalidLayout is returned by Import and Decode for malformed input.
	// It is always wrapped with the offending field or coordinate.
	ErrInvalidLayout = errors.New("layout: invalid layout")

	// ErrUnknownFormat is returned for an unsupported encoding name.
	ErrUnknownFormat = errors.New("layout: unknown format")
)

// Layout is the serializable snapshot of Start, End and Walls.
// Walls are [row, col] pairs in row-major order when produced by Export.
type Layout struct {
	StartNode *grid.Coord `json:"startNode" yaml:"startNode"`
	EndNode   *grid.Coord `json:"endNode" yaml:"endNode"`
	Walls     [][]int     `json:"walls" yaml:"walls,flow"`
}

// Format selects a text encoding.
type Format string

// Supported encodings.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" (any case).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
