package style

import "fmt"

// Property names one settable style property for patch-based updates.
type Property string

const (
	PropFontSize     Property = "fontSize"
	PropFontWeight   Property = "fontWeight"
	PropColor        Property = "color"
	PropAlign        Property = "align"
	PropPadding      Property = "padding"
	PropMargin       Property = "margin"
	PropBackground   Property = "background"
	PropBorderWidth  Property = "borderWidth"
	PropBorderColor  Property = "borderColor"
	PropBorderRadius Property = "borderRadius"

	PropTableHeaderText Property = "tableHeaderText"
	PropImageAlign      Property = "imageAlign"
	PropSpacerHeight    Property = "spacerHeight"
	PropLogoMaxHeight   Property = "logoMaxHeight"
)

// Patch is a shallow style update. Only listed properties change; a property
// mapped to nil is cleared back to "unset" rather than to a default value, so
// clearing survives serialization round-trips distinguishably from an
// explicit value.
type Patch map[Property]any

// Apply merges the patch into a copy of the settings and returns the copy.
// The input settings are never mutated. A value whose dynamic type does not
// match the property is rejected.
func Apply(s *Settings, patch Patch) (*Settings, error) {
	out := s.Clone()
	if out == nil {
		out = &Settings{}
	}
	for prop, value := range patch {
		if err := applyOne(out, prop, value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func applyOne(s *Settings, prop Property, value any) error {
	clear := value == nil

	switch prop {
	case PropFontSize:
		if clear {
			s.FontSize = nil
			return nil
		}
		tier, ok := asSizeTier(value)
		if !ok || !tier.Valid() {
			return invalidValue(prop, value)
		}
		s.FontSize = &tier
	case PropFontWeight:
		if clear {
			s.FontWeight = nil
			return nil
		}
		tier, ok := asWeightTier(value)
		if !ok || !tier.Valid() {
			return invalidValue(prop, value)
		}
		s.FontWeight = &tier
	case PropAlign, PropImageAlign:
		if clear {
			if prop == PropAlign {
				s.Align = nil
			} else {
				s.ImageAlign = nil
			}
			return nil
		}
		align, ok := asAlignment(value)
		if !ok || !align.Valid() {
			return invalidValue(prop, value)
		}
		if prop == PropAlign {
			s.Align = &align
		} else {
			s.ImageAlign = &align
		}
	case PropColor, PropBackground, PropBorderColor, PropTableHeaderText:
		target := map[Property]**string{
			PropColor:           &s.Color,
			PropBackground:      &s.Background,
			PropBorderColor:     &s.BorderColor,
			PropTableHeaderText: &s.TableHeaderText,
		}[prop]
		if clear {
			*target = nil
			return nil
		}
		str, ok := value.(string)
		if !ok {
			return invalidValue(prop, value)
		}
		*target = &str
	case PropPadding, PropMargin:
		target := &s.Padding
		if prop == PropMargin {
			target = &s.Margin
		}
		if clear {
			*target = nil
			return nil
		}
		edges, ok := asEdges(value)
		if !ok {
			return invalidValue(prop, value)
		}
		*target = &edges
	case PropBorderWidth, PropBorderRadius, PropSpacerHeight, PropLogoMaxHeight:
		target := map[Property]**int{
			PropBorderWidth:   &s.BorderWidth,
			PropBorderRadius:  &s.BorderRadius,
			PropSpacerHeight:  &s.SpacerHeight,
			PropLogoMaxHeight: &s.LogoMaxHeight,
		}[prop]
		if clear {
			*target = nil
			return nil
		}
		n, ok := asInt(value)
		if !ok || n < 0 {
			return invalidValue(prop, value)
		}
		*target = &n
	default:
		return fmt.Errorf("style: unknown property %q", prop)
	}
	return nil
}

func asSizeTier(v any) (SizeTier, bool) {
	switch t := v.(type) {
	case SizeTier:
		return t, true
	case string:
		return SizeTier(t), true
	}
	return "", false
}

func asWeightTier(v any) (WeightTier, bool) {
	switch t := v.(type) {
	case WeightTier:
		return t, true
	case string:
		return WeightTier(t), true
	}
	return "", false
}

func asAlignment(v any) (Alignment, bool) {
	switch t := v.(type) {
	case Alignment:
		return t, true
	case string:
		return Alignment(t), true
	}
	return "", false
}

func asEdges(v any) (Edges, bool) {
	switch t := v.(type) {
	case Edges:
		return t, true
	case *Edges:
		if t == nil {
			return Edges{}, false
		}
		return *t, true
	}
	return Edges{}, false
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		// JSON-decoded numbers arrive as float64.
		return int(t), true
	}
	return 0, false
}

func invalidValue(prop Property, value any) error {
	return fmt.Errorf("style: invalid value %v for property %q", value, prop)
}
