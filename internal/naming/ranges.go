package naming

// rule is one predicate→name entry in a hue range. Rules are evaluated
// top-down; the first rule whose predicate holds wins.
type rule struct {
	when func(p profile) bool
	name string
}

// hueRange owns a contiguous span of hue degrees and its ordered rule
// list. A range with from > to wraps across the 0/360 boundary.
type hueRange struct {
	label    string
	from     float64 // inclusive, degrees
	to       float64 // exclusive, degrees
	rules    []rule
	fallback string
}

// contains reports whether a hue in [0, 360) falls inside the range,
// handling the wrap-around red range.
func (r hueRange) contains(hue float64) bool {
	if r.from > r.to {
		return hue >= r.from || hue < r.to
	}
	return hue >= r.from && hue < r.to
}

// hueRanges is the full chromatic taxonomy. Boundaries and rule order
// are fixed, hand-tuned data: visually adjacent colours must resolve
// to stable names, so the precedence encoded here (darkness before
// mutedness, extremes before fallbacks) is part of the contract.
var hueRanges = []hueRange{
	{
		label: "red", from: 345, to: 10,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Maroon"},
			{func(p profile) bool { return p.dark && p.muted }, "Maroon"},
			{func(p profile) bool { return p.dark }, "Dark Red"},
			{func(p profile) bool { return p.veryLight && p.veryPale }, "Rose White"},
			{func(p profile) bool { return p.veryLight }, "Pale Rose"},
			{func(p profile) bool { return p.light && p.pale }, "Dusty Rose"},
			{func(p profile) bool { return p.light }, "Salmon"},
			{func(p profile) bool { return p.pale }, "Rosy Brown"},
			{func(p profile) bool { return p.muted }, "Brick Red"},
		},
		fallback: "Red",
	},
	{
		label: "red-orange", from: 10, to: 25,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Mahogany"},
			{func(p profile) bool { return p.dark }, "Auburn"},
			{func(p profile) bool { return p.veryLight }, "Light Peach"},
			{func(p profile) bool { return p.light && p.muted }, "Dusty Coral"},
			{func(p profile) bool { return p.light }, "Coral"},
			{func(p profile) bool { return p.pale }, "Clay"},
			{func(p profile) bool { return p.muted }, "Terracotta"},
			{func(p profile) bool { return p.veryVivid }, "Vermilion"},
		},
		fallback: "Red-Orange",
	},
	{
		label: "orange", from: 25, to: 42,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Dark Brown"},
			{func(p profile) bool { return p.dark && p.muted }, "Brown"},
			{func(p profile) bool { return p.dark }, "Russet"},
			{func(p profile) bool { return p.veryLight }, "Pale Peach"},
			{func(p profile) bool { return p.light && p.muted }, "Apricot"},
			{func(p profile) bool { return p.light }, "Light Orange"},
			{func(p profile) bool { return p.veryPale }, "Beige"},
			{func(p profile) bool { return p.pale }, "Tan"},
			{func(p profile) bool { return p.muted }, "Caramel"},
			{func(p profile) bool { return p.veryVivid }, "Bright Orange"},
		},
		fallback: "Orange",
	},
	{
		label: "gold", from: 42, to: 52,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Dark Bronze"},
			{func(p profile) bool { return p.dark }, "Bronze"},
			{func(p profile) bool { return p.veryLight }, "Champagne"},
			{func(p profile) bool { return p.light && p.pale }, "Buff"},
			{func(p profile) bool { return p.light }, "Light Gold"},
			{func(p profile) bool { return p.veryPale }, "Sand"},
			{func(p profile) bool { return p.pale }, "Camel"},
			{func(p profile) bool { return p.muted }, "Mustard"},
			{func(p profile) bool { return p.veryVivid }, "Amber"},
		},
		fallback: "Gold",
	},
	{
		label: "yellow", from: 52, to: 68,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Dark Olive"},
			{func(p profile) bool { return p.dark }, "Olive"},
			{func(p profile) bool { return p.veryLight && p.veryPale }, "Ivory"},
			{func(p profile) bool { return p.veryLight }, "Cream"},
			{func(p profile) bool { return p.light && p.muted }, "Pale Khaki"},
			{func(p profile) bool { return p.light }, "Light Yellow"},
			{func(p profile) bool { return p.veryPale }, "Parchment"},
			{func(p profile) bool { return p.pale }, "Khaki"},
			{func(p profile) bool { return p.muted }, "Brass"},
			{func(p profile) bool { return p.veryVivid }, "Bright Yellow"},
		},
		fallback: "Yellow",
	},
	{
		label: "yellow-green", from: 68, to: 85,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Dark Moss"},
			{func(p profile) bool { return p.dark }, "Moss Green"},
			{func(p profile) bool { return p.veryLight }, "Pale Lime"},
			{func(p profile) bool { return p.light }, "Pear"},
			{func(p profile) bool { return p.pale }, "Olive Drab"},
			{func(p profile) bool { return p.muted }, "Avocado"},
			{func(p profile) bool { return p.veryVivid }, "Chartreuse"},
		},
		fallback: "Yellow-Green",
	},
	{
		label: "green", from: 85, to: 155,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Deep Forest"},
			{func(p profile) bool { return p.dark && p.pale }, "Dark Sage"},
			{func(p profile) bool { return p.dark }, "Forest Green"},
			{func(p profile) bool { return p.veryLight && p.veryPale }, "Pale Mint"},
			{func(p profile) bool { return p.veryLight }, "Pale Green"},
			{func(p profile) bool { return p.light && p.pale }, "Sage"},
			{func(p profile) bool { return p.light }, "Light Green"},
			{func(p profile) bool { return p.veryPale }, "Gray-Green"},
			{func(p profile) bool { return p.pale }, "Dusty Green"},
			{func(p profile) bool { return p.muted }, "Fern"},
			{func(p profile) bool { return p.vivid && p.mediumLight }, "Emerald"},
			{func(p profile) bool { return p.veryVivid }, "Bright Green"},
		},
		fallback: "Green",
	},
	{
		label: "cyan-green", from: 155, to: 175,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Deep Sea Green"},
			{func(p profile) bool { return p.dark }, "Pine"},
			{func(p profile) bool { return p.veryLight }, "Mint"},
			{func(p profile) bool { return p.light }, "Seafoam"},
			{func(p profile) bool { return p.pale }, "Dusty Jade"},
			{func(p profile) bool { return p.muted }, "Jade"},
			{func(p profile) bool { return p.veryVivid }, "Spring Green"},
		},
		fallback: "Sea Green",
	},
	{
		label: "cyan", from: 175, to: 195,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Dark Teal"},
			{func(p profile) bool { return p.dark }, "Teal"},
			{func(p profile) bool { return p.veryLight }, "Pale Cyan"},
			{func(p profile) bool { return p.light }, "Aqua"},
			{func(p profile) bool { return p.pale }, "Dusty Teal"},
			{func(p profile) bool { return p.muted }, "Cadet Blue"},
			{func(p profile) bool { return p.veryVivid }, "Turquoise"},
		},
		fallback: "Cyan",
	},
	{
		label: "light-blue", from: 195, to: 215,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Deep Slate"},
			{func(p profile) bool { return p.dark }, "Steel Blue"},
			{func(p profile) bool { return p.veryLight }, "Ice Blue"},
			{func(p profile) bool { return p.light }, "Sky Blue"},
			{func(p profile) bool { return p.pale }, "Gray-Blue"},
			{func(p profile) bool { return p.muted }, "Dusty Blue"},
			{func(p profile) bool { return p.veryVivid }, "Azure"},
		},
		fallback: "Light Blue",
	},
	{
		label: "blue", from: 215, to: 250,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Navy"},
			{func(p profile) bool { return p.dark && p.muted }, "Dark Slate"},
			{func(p profile) bool { return p.dark }, "Dark Blue"},
			{func(p profile) bool { return p.veryLight }, "Pale Blue"},
			{func(p profile) bool { return p.light && p.pale }, "Powder Blue"},
			{func(p profile) bool { return p.light }, "Cornflower"},
			{func(p profile) bool { return p.veryPale }, "Blue-Gray"},
			{func(p profile) bool { return p.pale }, "Slate"},
			{func(p profile) bool { return p.muted }, "Denim"},
			{func(p profile) bool { return p.vivid && p.mediumLight }, "Royal Blue"},
			{func(p profile) bool { return p.veryVivid }, "Cobalt"},
		},
		fallback: "Blue",
	},
	{
		label: "blue-purple", from: 250, to: 275,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Dark Indigo"},
			{func(p profile) bool { return p.dark }, "Indigo"},
			{func(p profile) bool { return p.veryLight }, "Pale Lavender"},
			{func(p profile) bool { return p.light }, "Periwinkle"},
			{func(p profile) bool { return p.pale }, "Gray-Violet"},
			{func(p profile) bool { return p.muted }, "Slate Purple"},
			{func(p profile) bool { return p.veryVivid }, "Violet-Blue"},
		},
		fallback: "Violet",
	},
	{
		label: "purple", from: 275, to: 310,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Deep Purple"},
			{func(p profile) bool { return p.dark && p.muted }, "Eggplant"},
			{func(p profile) bool { return p.dark }, "Dark Purple"},
			{func(p profile) bool { return p.veryLight }, "Pale Lilac"},
			{func(p profile) bool { return p.light && p.muted }, "Dusty Lavender"},
			{func(p profile) bool { return p.light }, "Lavender"},
			{func(p profile) bool { return p.pale }, "Heather"},
			{func(p profile) bool { return p.muted }, "Plum"},
			{func(p profile) bool { return p.vivid && p.mediumLight }, "Amethyst"},
			{func(p profile) bool { return p.veryVivid }, "Bright Purple"},
		},
		fallback: "Purple",
	},
	{
		label: "magenta", from: 310, to: 330,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Deep Magenta"},
			{func(p profile) bool { return p.dark }, "Mulberry"},
			{func(p profile) bool { return p.veryLight }, "Pale Orchid"},
			{func(p profile) bool { return p.light }, "Orchid"},
			{func(p profile) bool { return p.pale }, "Mauve"},
			{func(p profile) bool { return p.muted }, "Raspberry"},
			{func(p profile) bool { return p.veryVivid }, "Fuchsia"},
		},
		fallback: "Magenta",
	},
	{
		label: "pink", from: 330, to: 345,
		rules: []rule{
			{func(p profile) bool { return p.veryDark }, "Wine"},
			{func(p profile) bool { return p.dark }, "Berry"},
			{func(p profile) bool { return p.veryLight && p.veryPale }, "Shell Pink"},
			{func(p profile) bool { return p.veryLight }, "Baby Pink"},
			{func(p profile) bool { return p.light && p.pale }, "Dusty Pink"},
			{func(p profile) bool { return p.light }, "Light Pink"},
			{func(p profile) bool { return p.pale }, "Rose"},
			{func(p profile) bool { return p.muted }, "Rouge"},
			{func(p profile) bool { return p.veryVivid }, "Hot Pink"},
		},
		fallback: "Pink",
	},
}
