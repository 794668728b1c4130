package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	//go:embed profiles/default.json
	embeddedProfilesFS embed.FS
)

// Profile configures how curves are drawn.
type Profile struct {
	// Palette is the name of the palette to draw with.
	Palette string `default:"unicode" validate:"required" json:"palette,omitempty"`
	// MaxWidth clips rendered rows to a number of cells. 0 means no clipping.
	MaxWidth uint `json:"maxWidth,omitempty"`
	// Orders are the curve orders to draw.
	Orders []int `default:"[1,2,3,4]" validate:"required,min=1,dive,min=1,max=8" json:"orders"`
	// Palettes are the available glyph sets, in document order.
	Palettes *orderedmap.OrderedMap[string, Palette] `validate:"required" json:"-"`
}

// Palette is a set of glyphs to draw a curve path with.
// Path glyphs are keyed by the pair of cell edges the path runs through:
// vertical, horizontal, up+right, right+down, down+left, left+up.
// Start glyphs are keyed by the direction toward the second cell,
// end glyphs by the direction of travel into the last cell;
// both in up, right, down, left order.
type Palette struct {
	Path  []string `validate:"required,len=6,dive,required" json:"path"`
	Start []string `validate:"required,len=4,dive,required" json:"start"`
	End   []string `validate:"required,len=4,dive,required" json:"end"`
	// Jump marks a cell whose curve neighbors are not grid neighbors.
	Jump string `validate:"required" json:"jump"`
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	err := defaults.Set(p)
	if err != nil {
		return err
	}

	_, err = marshmallow.Unmarshal(data, p, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}

	// Palettes are unmarshalled separately to keep their document order.
	var specials struct {
		Palettes *orderedmap.OrderedMap[string, Palette] `json:"palettes"`
	}
	err = json.Unmarshal(data, &specials)
	if err != nil {
		return err
	}
	if specials.Palettes == nil || specials.Palettes.Len() == 0 {
		return fmt.Errorf(`missing key "palettes"`)
	}
	p.Palettes = specials.Palettes

	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.Struct(p)
	if err != nil {
		return err
	}
	for pair := p.Palettes.Oldest(); pair != nil; pair = pair.Next() {
		err = validate.Struct(pair.Value)
		if err != nil {
			return fmt.Errorf(`palette %q: %w`, pair.Key, err)
		}
	}
	return nil
}

// LoadDefaultProfile loads the embedded default render profile.
func LoadDefaultProfile() (Profile, error) {
	var profile Profile
	data, err := embeddedProfilesFS.ReadFile("profiles/default.json")
	if err != nil {
		return profile, err
	}
	err = json.Unmarshal(data, &profile)
	return profile, err
}

// LoadProfileJSON loads a render profile from a JSON file.
func LoadProfileJSON(path string) (Profile, error) {
	var profile Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, err
	}
	err = json.Unmarshal(data, &profile)
	return profile, err
}
