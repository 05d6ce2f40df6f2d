package htmldoc

import "github.com/offertio/dokgen/pkg/style"

// Tier tokens stay abstract through style resolution; the HTML renderer is
// where they become concrete pixel sizes and font weights.

var sizePixels = map[style.SizeTier]int{
	style.SizeXS:   10,
	style.SizeSM:   12,
	style.SizeBase: 14,
	style.SizeLG:   16,
	style.SizeXL:   20,
	style.Size2XL:  24,
	style.Size3XL:  30,
}

var weightValues = map[style.WeightTier]int{
	style.WeightNormal:   400,
	style.WeightMedium:   500,
	style.WeightSemibold: 600,
	style.WeightBold:     700,
}

func fontSizePx(tier style.SizeTier) int {
	if px, ok := sizePixels[tier]; ok {
		return px
	}
	return sizePixels[style.SizeBase]
}

func fontWeightValue(tier style.WeightTier) int {
	if w, ok := weightValues[tier]; ok {
		return w
	}
	return weightValues[style.WeightNormal]
}
