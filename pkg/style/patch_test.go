package style

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply_SetAndKeep(t *testing.T) {
	base := &Settings{
		FontSize: Ptr(SizeLG),
		Color:    Ptr("#111111"),
	}

	got, err := Apply(base, Patch{
		PropColor: "#222222",
		PropAlign: "center",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got.Color == nil || *got.Color != "#222222" {
		t.Fatalf("expected patched color, got %v", got.Color)
	}
	if got.Align == nil || *got.Align != AlignCenter {
		t.Fatalf("expected patched align, got %v", got.Align)
	}
	// Unlisted properties keep their values.
	if got.FontSize == nil || *got.FontSize != SizeLG {
		t.Fatalf("expected font size untouched, got %v", got.FontSize)
	}
}

func TestApply_NilClearsToUnset(t *testing.T) {
	base := &Settings{
		Color:    Ptr("#111111"),
		FontSize: Ptr(SizeLG),
	}

	got, err := Apply(base, Patch{PropColor: nil})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got.Color != nil {
		t.Fatalf("expected color cleared to unset, got %v", *got.Color)
	}
	if got.FontSize == nil {
		t.Fatalf("expected font size to survive the clear")
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	base := &Settings{Color: Ptr("#111111")}

	if _, err := Apply(base, Patch{PropColor: "#222222", PropBorderWidth: 2}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if *base.Color != "#111111" {
		t.Fatalf("input settings mutated: %v", *base.Color)
	}
	if base.BorderWidth != nil {
		t.Fatalf("input settings grew a border width")
	}
}

func TestApply_NilSettings(t *testing.T) {
	got, err := Apply(nil, Patch{PropFontWeight: "bold"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.FontWeight == nil || *got.FontWeight != WeightBold {
		t.Fatalf("expected weight set on fresh settings, got %v", got.FontWeight)
	}
}

func TestApply_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		patch Patch
	}{
		{"wrong type", Patch{PropColor: 42}},
		{"invalid tier", Patch{PropFontSize: "huge"}},
		{"negative int", Patch{PropBorderWidth: -1}},
		{"unknown property", Patch{Property("fontStyle"): "italic"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Apply(&Settings{}, tc.patch); err == nil {
				t.Fatalf("expected error for %v", tc.patch)
			}
		})
	}
}

func TestApply_EdgesAndJSONNumbers(t *testing.T) {
	got, err := Apply(nil, Patch{
		PropPadding:      Edges{Top: 8, Right: 8},
		PropSpacerHeight: float64(24), // JSON-decoded number
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff(&Edges{Top: 8, Right: 8}, got.Padding); diff != "" {
		t.Fatalf("padding mismatch (-want +got):\n%s", diff)
	}
	if got.SpacerHeight == nil || *got.SpacerHeight != 24 {
		t.Fatalf("expected spacer height 24, got %v", got.SpacerHeight)
	}
}

func TestApply_ErrorNamesProperty(t *testing.T) {
	_, err := Apply(nil, Patch{PropFontSize: "huge"})
	if err == nil || !strings.Contains(err.Error(), "fontSize") {
		t.Fatalf("expected error naming the property, got %v", err)
	}
}

func TestSettingsIsZero(t *testing.T) {
	if !(&Settings{}).IsZero() {
		t.Fatalf("empty settings should be zero")
	}
	if (&Settings{Color: Ptr("#000")}).IsZero() {
		t.Fatalf("settings with a color should not be zero")
	}
	var nilSettings *Settings
	if !nilSettings.IsZero() {
		t.Fatalf("nil settings should be zero")
	}
}
