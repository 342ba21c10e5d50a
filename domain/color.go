package domain

type Gradient struct {
	Type   string   `json:"type" validate:"required,oneof=radial linear"`
	Colors []string `json:"colors" validate:"min=1,dive,hexcolor"`
}

type BadgeColor struct {
	Border           string   `json:"border" validate:"hexcolor"`
	InteriorGradient Gradient `json:"interior_gradient"`
}

// ColorTheme is the five-field color set used to render a character card.
type ColorTheme struct {
	BorderColors          []string   `json:"border_colors" validate:"min=1,max=4,dive,hexcolor"`
	TextColor             string     `json:"text_color" validate:"hexcolor"`
	BadgeInteriorGradient Gradient   `json:"badge_interior_gradient"`
	HPColor               BadgeColor `json:"hp_color"`
	ACColor               BadgeColor `json:"ac_color"`
}

// Clone returns a copy sharing no slice with the receiver.
func (c ColorTheme) Clone() ColorTheme {
	c.BorderColors = cloneStrings(c.BorderColors)
	c.BadgeInteriorGradient.Colors = cloneStrings(c.BadgeInteriorGradient.Colors)
	c.HPColor.InteriorGradient.Colors = cloneStrings(c.HPColor.InteriorGradient.Colors)
	c.ACColor.InteriorGradient.Colors = cloneStrings(c.ACColor.InteriorGradient.Colors)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
