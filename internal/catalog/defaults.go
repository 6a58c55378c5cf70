package catalog

var (
	fontOpenSans = OptionValue{ID: "open-sans", Title: "Open Sans", Value: "'Open Sans', sans-serif"}
	size18       = OptionValue{ID: "18px", Title: "18px", Value: "18px"}
	colorBlack   = OptionValue{ID: "black", Title: "Black", Value: "#000000"}
	bgWhite      = OptionValue{ID: "white", Title: "White", Value: "#FFFFFF"}
	widthWide    = OptionValue{ID: "wide", Title: "Wide", Value: "1394px"}
)

// Default returns the built-in catalog. Each call returns fresh slices.
func Default() *Catalog {
	return &Catalog{
		FontFamilies: []OptionValue{
			fontOpenSans,
			{ID: "ubuntu", Title: "Ubuntu", Value: "'Ubuntu', sans-serif"},
			{ID: "serif", Title: "Merriweather", Value: "'Merriweather', Georgia, serif"},
			{ID: "cormorant-garamond", Title: "Cormorant Garamond", Value: "'Cormorant Garamond', serif"},
			{ID: "days-one", Title: "Days One", Value: "'Days One', cursive"},
		},
		FontSizes: []OptionValue{
			size18,
			{ID: "25px", Title: "25px", Value: "25px"},
			{ID: "38px", Title: "38px", Value: "38px"},
		},
		FontColors: []OptionValue{
			colorBlack,
			{ID: "white", Title: "White", Value: "#FFFFFF"},
			{ID: "gray", Title: "Gray", Value: "#C4C4C4"},
			{ID: "pink", Title: "Pink", Value: "#FEAFE8"},
			{ID: "fuchsia", Title: "Fuchsia", Value: "#FD24AF"},
			{ID: "yellow", Title: "Yellow", Value: "#FFC802"},
			{ID: "green", Title: "Green", Value: "#80D994"},
			{ID: "blue", Title: "Blue", Value: "#6FC1FD"},
			{ID: "purple", Title: "Purple", Value: "#5F00E0"},
		},
		BackgroundColors: []OptionValue{
			bgWhite,
			{ID: "black", Title: "Black", Value: "#000000"},
			{ID: "gray", Title: "Gray", Value: "#C4C4C4"},
			{ID: "pink", Title: "Pink", Value: "#FEAFE8"},
			{ID: "yellow", Title: "Yellow", Value: "#FFC802"},
			{ID: "green", Title: "Green", Value: "#80D994"},
			{ID: "blue", Title: "Blue", Value: "#6FC1FD"},
			{ID: "purple", Title: "Purple", Value: "#5F00E0"},
		},
		ContentWidths: []OptionValue{
			widthWide,
			{ID: "narrow", Title: "Narrow", Value: "948px"},
		},
		Defaults: StyleSet{
			FontFamily:      fontOpenSans,
			FontSize:        size18,
			FontColor:       colorBlack,
			BackgroundColor: bgWhite,
			ContentWidth:    widthWide,
		},
	}
}
