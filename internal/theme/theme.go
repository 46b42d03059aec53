package theme

import (
	"fmt"
	"image/color"
)

// Palette holds the resolved colours used by every renderer.
type Palette struct {
	Name        string
	Background  color.RGBA
	Border      color.RGBA
	Snake       color.RGBA
	Head        color.RGBA
	Food        color.RGBA
	Highlight   color.RGBA // Cells involved in the collision that ended the round
	Text        color.RGBA
	Button      color.RGBA
	ButtonHover color.RGBA
}

// File represents the structure of theme.json.
type File struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// Resolve parses every colour of the file. All palette keys are required.
func (f File) Resolve() (Palette, error) {
	p := Palette{Name: f.Name}
	fields := []struct {
		key string
		dst *color.RGBA
	}{
		{"background", &p.Background},
		{"border", &p.Border},
		{"snake", &p.Snake},
		{"head", &p.Head},
		{"food", &p.Food},
		{"highlight", &p.Highlight},
		{"text", &p.Text},
		{"button", &p.Button},
		{"button_hover", &p.ButtonHover},
	}

	for _, field := range fields {
		hex, ok := f.Colors[field.key]
		if !ok {
			return Palette{}, fmt.Errorf("theme %q: missing color %q", f.Name, field.key)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %q: color %q: %w", f.Name, field.key, err)
		}
		*field.dst = c
	}
	return p, nil
}

// LoadPalette loads the embedded theme.json.
func LoadPalette() (Palette, error) {
	file, err := Load[File]("theme.json")
	if err != nil {
		return Palette{}, err
	}
	return file.Resolve()
}

// MustLoadPalette loads the embedded palette, panicking on error.
// The palette ships with the binary, so a failure is a build defect.
func MustLoadPalette() Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}
