package style

// FallbackColor is the hard-coded body text color used when neither the
// block, the type default, nor the design options supply one.
const FallbackColor = "#1f2937"

// FallbackFontFamily is used when the template declares no font family.
const FallbackFontFamily = "Helvetica, Arial, sans-serif"

// DesignDefaults is the subset of template-wide design options the resolver
// consults. Everything else in the design options (logo position, toggles,
// text overrides) is consumed by renderers, not by style resolution.
type DesignDefaults struct {
	FontFamily   string
	PrimaryColor string
}

// Resolved is the fully defaulted style record for one block. Every field
// holds a concrete value; renderers never see "unset".
type Resolved struct {
	FontFamily   string     `json:"fontFamily"`
	FontSize     SizeTier   `json:"fontSize"`
	FontWeight   WeightTier `json:"fontWeight"`
	Color        string     `json:"color"`
	Align        Alignment  `json:"align"`
	Padding      Edges      `json:"padding"`
	Margin       Edges      `json:"margin"`
	Background   string     `json:"background,omitempty"`
	BorderWidth  int        `json:"borderWidth"`
	BorderColor  string     `json:"borderColor,omitempty"`
	BorderRadius int        `json:"borderRadius"`

	TableHeaderText string    `json:"tableHeaderText,omitempty"`
	ImageAlign      Alignment `json:"imageAlign"`
	SpacerHeight    int       `json:"spacerHeight,omitempty"`
	LogoMaxHeight   int       `json:"logoMaxHeight,omitempty"`
}

// Resolve merges a block's sparse settings with the type's default settings
// and the template design options. Precedence per property, highest first:
// explicit block value, type default, design option (font family and primary
// color only), hard fallback. Spacing and borders never inherit from the
// design options; absent at both block and type level they resolve to zero.
func Resolve(block *Settings, typeDefault Settings, design DesignDefaults) Resolved {
	out := Resolved{
		FontFamily: firstNonEmpty(design.FontFamily, FallbackFontFamily),
		FontSize:   SizeBase,
		FontWeight: WeightNormal,
		Align:      AlignLeft,
		ImageAlign: AlignLeft,
	}

	out.FontSize = pickTier(block.get().FontSize, typeDefault.FontSize, out.FontSize)
	out.FontWeight = pickWeight(block.get().FontWeight, typeDefault.FontWeight, out.FontWeight)
	out.Align = pickAlign(block.get().Align, typeDefault.Align, out.Align)
	out.ImageAlign = pickAlign(block.get().ImageAlign, typeDefault.ImageAlign, out.ImageAlign)

	out.Color = pickString(block.get().Color, typeDefault.Color, firstNonEmpty(design.PrimaryColor, FallbackColor))
	out.Background = pickString(block.get().Background, typeDefault.Background, "")
	out.BorderColor = pickString(block.get().BorderColor, typeDefault.BorderColor, "")
	out.TableHeaderText = pickString(block.get().TableHeaderText, typeDefault.TableHeaderText, "")

	out.Padding = pickEdges(block.get().Padding, typeDefault.Padding)
	out.Margin = pickEdges(block.get().Margin, typeDefault.Margin)
	out.BorderWidth = pickInt(block.get().BorderWidth, typeDefault.BorderWidth, 0)
	out.BorderRadius = pickInt(block.get().BorderRadius, typeDefault.BorderRadius, 0)
	out.SpacerHeight = pickInt(block.get().SpacerHeight, typeDefault.SpacerHeight, 0)
	out.LogoMaxHeight = pickInt(block.get().LogoMaxHeight, typeDefault.LogoMaxHeight, 0)

	return out
}

// get lets resolution treat a nil block settings record as all-unset without
// sprinkling nil checks through every property pick.
func (s *Settings) get() Settings {
	if s == nil {
		return Settings{}
	}
	return *s
}

func pickTier(block, typeDefault *SizeTier, fallback SizeTier) SizeTier {
	if block != nil && block.Valid() {
		return *block
	}
	if typeDefault != nil && typeDefault.Valid() {
		return *typeDefault
	}
	return fallback
}

func pickWeight(block, typeDefault *WeightTier, fallback WeightTier) WeightTier {
	if block != nil && block.Valid() {
		return *block
	}
	if typeDefault != nil && typeDefault.Valid() {
		return *typeDefault
	}
	return fallback
}

func pickAlign(block, typeDefault *Alignment, fallback Alignment) Alignment {
	if block != nil && block.Valid() {
		return *block
	}
	if typeDefault != nil && typeDefault.Valid() {
		return *typeDefault
	}
	return fallback
}

func pickString(block, typeDefault *string, fallback string) string {
	if block != nil {
		return *block
	}
	if typeDefault != nil {
		return *typeDefault
	}
	return fallback
}

func pickInt(block, typeDefault *int, fallback int) int {
	if block != nil {
		return *block
	}
	if typeDefault != nil {
		return *typeDefault
	}
	return fallback
}

func pickEdges(block, typeDefault *Edges) Edges {
	if block != nil {
		return *block
	}
	if typeDefault != nil {
		return *typeDefault
	}
	return Edges{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
