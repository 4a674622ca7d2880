package field

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LayoutPathEnv is the environment variable that points to a field layout
// file. When unset, the bundled default layout is used.
const LayoutPathEnv = "HAWK_FIELD_LAYOUT"

// A Layout holds the static dimensions of the competition field in meters.
// It is loaded once and treated as constant for the process lifetime.
type Layout struct {
	Length float64 `json:"fieldLength"`
	Width  float64 `json:"fieldWidth"`
}

// DefaultLayout is the layout of the current season's field.
var DefaultLayout = Layout{
	Length: 17.548,
	Width:  8.052,
}

// LoadLayout reads a field layout from a JSON file. The format matches the
// dimension fields of the published field layout files.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading field layout: %w", err)
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("parsing field layout %s: %w", path, err)
	}

	if layout.Length <= 0 || layout.Width <= 0 {
		return Layout{}, fmt.Errorf(
			"field layout %s has non-positive dimensions %.3f x %.3f",
			path, layout.Length, layout.Width)
	}

	return layout, nil
}

// LoadLayoutFromEnv loads the layout file named by the HAWK_FIELD_LAYOUT
// environment variable, honoring a .env file in the working directory. It
// falls back to DefaultLayout when the variable is unset.
func LoadLayoutFromEnv() (Layout, error) {
	// A missing .env file is fine; the variable may be set directly.
	_ = godotenv.Load()

	path := os.Getenv(LayoutPathEnv)
	if path == "" {
		return DefaultLayout, nil
	}

	return LoadLayout(path)
}
