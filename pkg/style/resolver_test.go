package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve_BlockValueWins(t *testing.T) {
	block := &Settings{
		FontSize: Ptr(SizeXL),
		Color:    Ptr("#ff0000"),
	}
	typeDefault := Settings{
		FontSize:   Ptr(SizeSM),
		FontWeight: Ptr(WeightBold),
		Color:      Ptr("#00ff00"),
	}
	design := DesignDefaults{PrimaryColor: "#0000ff"}

	got := Resolve(block, typeDefault, design)

	if got.FontSize != SizeXL {
		t.Fatalf("expected block font size to win, got %s", got.FontSize)
	}
	if got.Color != "#ff0000" {
		t.Fatalf("expected block color to win, got %s", got.Color)
	}
	if got.FontWeight != WeightBold {
		t.Fatalf("expected type default weight where block is unset, got %s", got.FontWeight)
	}
}

func TestResolve_DesignFillsFontAndColorOnly(t *testing.T) {
	design := DesignDefaults{
		FontFamily:   "Inter, sans-serif",
		PrimaryColor: "#123456",
	}

	got := Resolve(nil, Settings{}, design)

	if got.FontFamily != "Inter, sans-serif" {
		t.Fatalf("expected design font family, got %s", got.FontFamily)
	}
	if got.Color != "#123456" {
		t.Fatalf("expected design primary color, got %s", got.Color)
	}
	// Spacing and borders never inherit from the design options.
	if diff := cmp.Diff(Edges{}, got.Padding); diff != "" {
		t.Fatalf("padding mismatch (-want +got):\n%s", diff)
	}
	if got.BorderWidth != 0 || got.BorderRadius != 0 {
		t.Fatalf("expected zero borders, got width=%d radius=%d", got.BorderWidth, got.BorderRadius)
	}
}

func TestResolve_HardFallbacks(t *testing.T) {
	got := Resolve(nil, Settings{}, DesignDefaults{})

	if got.Color != FallbackColor {
		t.Fatalf("expected fallback color %s, got %s", FallbackColor, got.Color)
	}
	if got.FontFamily != FallbackFontFamily {
		t.Fatalf("expected fallback font family, got %s", got.FontFamily)
	}
	if got.FontSize != SizeBase || got.FontWeight != WeightNormal || got.Align != AlignLeft {
		t.Fatalf("unexpected typography defaults: %+v", got)
	}
}

func TestResolve_InvalidTierFallsThrough(t *testing.T) {
	block := &Settings{FontSize: Ptr(SizeTier("giant"))}
	typeDefault := Settings{FontSize: Ptr(Size2XL)}

	got := Resolve(block, typeDefault, DesignDefaults{})

	if got.FontSize != Size2XL {
		t.Fatalf("expected invalid block tier to fall through to type default, got %s", got.FontSize)
	}
}

func TestResolve_DeterministicForSameInputs(t *testing.T) {
	block := &Settings{
		FontSize: Ptr(SizeLG),
		Padding:  &Edges{Top: 4, Bottom: 4},
	}
	typeDefault := Settings{FontWeight: Ptr(WeightMedium)}
	design := DesignDefaults{PrimaryColor: "#222222"}

	first := Resolve(block, typeDefault, design)
	second := Resolve(block, typeDefault, design)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolution not deterministic (-first +second):\n%s", diff)
	}
}
