// Package style models block-level visual settings and resolves them against
// type defaults and template-wide design options.
//
// Settings is sparse: every property is a pointer and nil means "unset", which
// is distinct from an explicit zero value. Resolution happens property by
// property, so a block can override its font size while still inheriting its
// color from the type default. The resolver is unit-agnostic: size and weight
// stay tier tokens and are mapped to concrete values by whichever renderer
// consumes them.
package style

// SizeTier is one of the seven fixed font-size steps.
type SizeTier string

const (
	SizeXS   SizeTier = "xs"
	SizeSM   SizeTier = "sm"
	SizeBase SizeTier = "base"
	SizeLG   SizeTier = "lg"
	SizeXL   SizeTier = "xl"
	Size2XL  SizeTier = "2xl"
	Size3XL  SizeTier = "3xl"
)

// WeightTier is one of the four fixed font-weight steps.
type WeightTier string

const (
	WeightNormal   WeightTier = "normal"
	WeightMedium   WeightTier = "medium"
	WeightSemibold WeightTier = "semibold"
	WeightBold     WeightTier = "bold"
)

// Alignment is a horizontal text or image alignment.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid reports whether the tier is one of the seven known steps.
func (t SizeTier) Valid() bool {
	switch t {
	case SizeXS, SizeSM, SizeBase, SizeLG, SizeXL, Size2XL, Size3XL:
		return true
	}
	return false
}

// Valid reports whether the tier is one of the four known steps.
func (t WeightTier) Valid() bool {
	switch t {
	case WeightNormal, WeightMedium, WeightSemibold, WeightBold:
		return true
	}
	return false
}

// Valid reports whether the alignment is a known value.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// Edges carries per-edge spacing in pixels.
type Edges struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Settings is the sparse per-block style record persisted alongside block
// content. Unset (nil) properties fall through to type defaults and, for the
// covered subset, template design options. The trailing fields are
// type-specific extras; they are ignored for blocks that have no use for them.
type Settings struct {
	FontSize     *SizeTier   `json:"fontSize,omitempty"`
	FontWeight   *WeightTier `json:"fontWeight,omitempty"`
	Color        *string     `json:"color,omitempty"`
	Align        *Alignment  `json:"align,omitempty"`
	Padding      *Edges      `json:"padding,omitempty"`
	Margin       *Edges      `json:"margin,omitempty"`
	Background   *string     `json:"background,omitempty"`
	BorderWidth  *int        `json:"borderWidth,omitempty"`
	BorderColor  *string     `json:"borderColor,omitempty"`
	BorderRadius *int        `json:"borderRadius,omitempty"`

	TableHeaderText *string    `json:"tableHeaderText,omitempty"`
	ImageAlign      *Alignment `json:"imageAlign,omitempty"`
	SpacerHeight    *int       `json:"spacerHeight,omitempty"`
	LogoMaxHeight   *int       `json:"logoMaxHeight,omitempty"`
}

// Clone returns a deep copy. A nil receiver clones to nil.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := Settings{}
	out.FontSize = clonePtr(s.FontSize)
	out.FontWeight = clonePtr(s.FontWeight)
	out.Color = clonePtr(s.Color)
	out.Align = clonePtr(s.Align)
	out.Padding = clonePtr(s.Padding)
	out.Margin = clonePtr(s.Margin)
	out.Background = clonePtr(s.Background)
	out.BorderWidth = clonePtr(s.BorderWidth)
	out.BorderColor = clonePtr(s.BorderColor)
	out.BorderRadius = clonePtr(s.BorderRadius)
	out.TableHeaderText = clonePtr(s.TableHeaderText)
	out.ImageAlign = clonePtr(s.ImageAlign)
	out.SpacerHeight = clonePtr(s.SpacerHeight)
	out.LogoMaxHeight = clonePtr(s.LogoMaxHeight)
	return &out
}

// IsZero reports whether every property is unset.
func (s *Settings) IsZero() bool {
	if s == nil {
		return true
	}
	return s.FontSize == nil && s.FontWeight == nil && s.Color == nil &&
		s.Align == nil && s.Padding == nil && s.Margin == nil &&
		s.Background == nil && s.BorderWidth == nil && s.BorderColor == nil &&
		s.BorderRadius == nil && s.TableHeaderText == nil && s.ImageAlign == nil &&
		s.SpacerHeight == nil && s.LogoMaxHeight == nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr is a convenience for building sparse Settings literals.
func Ptr[T any](v T) *T { return &v }
