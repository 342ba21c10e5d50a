package theme

import (
	"campaign-hub/domain"

	"github.com/samber/lo"
)

type PresetID string

const (
	GoldAndWarmth    PresetID = "option_a"
	PurpleAndSilver  PresetID = "option_b"
	EmeraldAndBronze PresetID = "option_c"

	DefaultPreset = GoldAndWarmth
)

type Preset struct {
	ID     PresetID          `json:"id"`
	Name   string            `json:"name"`
	Colors domain.ColorTheme `json:"colors"`
}

// order drives Presets and NextPreset.
var order = []PresetID{GoldAndWarmth, PurpleAndSilver, EmeraldAndBronze}

var presets = map[PresetID]Preset{
	GoldAndWarmth: {
		ID:   GoldAndWarmth,
		Name: "Gold & Warmth",
		Colors: domain.ColorTheme{
			BorderColors: []string{"#FFD700", "#FFA500", "#FF8C00", "#DC7F2E"},
			TextColor:    "#FFFFFF",
			BadgeInteriorGradient: domain.Gradient{
				Type:   "radial",
				Colors: []string{"#FFE4B5", "#DAA520"},
			},
			HPColor: domain.BadgeColor{
				Border:           "#FF0000",
				InteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#FF6B6B", "#CC0000"}},
			},
			ACColor: domain.BadgeColor{
				Border:           "#808080",
				InteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#A9A9A9", "#696969"}},
			},
		},
	},
	PurpleAndSilver: {
		ID:   PurpleAndSilver,
		Name: "Purple & Silver",
		Colors: domain.ColorTheme{
			BorderColors: []string{"#9370DB", "#8A2BE2", "#6A0DAD", "#4B0082"},
			TextColor:    "#FFFFFF",
			BadgeInteriorGradient: domain.Gradient{
				Type:   "radial",
				Colors: []string{"#DDA0DD", "#9932CC"},
			},
			HPColor: domain.BadgeColor{
				Border:           "#DC143C",
				InteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#FF69B4", "#C71585"}},
			},
			ACColor: domain.BadgeColor{
				Border:           "#C0C0C0",
				InteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#E8E8E8", "#A9A9A9"}},
			},
		},
	},
	EmeraldAndBronze: {
		ID:   EmeraldAndBronze,
		Name: "Emerald & Bronze",
		Colors: domain.ColorTheme{
			BorderColors: []string{"#00C957", "#228B22", "#006400", "#8B4513"},
			TextColor:    "#FFFFFF",
			BadgeInteriorGradient: domain.Gradient{
				Type:   "radial",
				Colors: []string{"#90EE90", "#2E8B57"},
			},
			HPColor: domain.BadgeColor{
				Border:           "#FF4500",
				InteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#FFA07A", "#FF6347"}},
			},
			ACColor: domain.BadgeColor{
				Border:           "#B8860B",
				InteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#DAA520", "#CD853F"}},
			},
		},
	},
}

// GetPreset returns a copy of the preset, false when the id is unknown.
func GetPreset(id PresetID) (Preset, bool) {
	p, ok := presets[id]
	if !ok {
		return Preset{}, false
	}
	p.Colors = p.Colors.Clone()
	return p, true
}

// Presets lists every preset in cycling order.
func Presets() []Preset {
	return lo.Map(order, func(id PresetID, _ int) Preset {
		p, _ := GetPreset(id)
		return p
	})
}

// NextPreset cycles through presets. An empty or unknown id starts over at the default.
func NextPreset(id PresetID) PresetID {
	i := lo.IndexOf(order, id)
	if i < 0 {
		return DefaultPreset
	}
	return order[(i+1)%len(order)]
}

// SystemDefault is the last step of the cascade.
func SystemDefault() domain.ColorTheme {
	return presets[DefaultPreset].Colors.Clone()
}
