package colorviz

// SpaceID identifies a supported color space. Dispatch throughout the
// package is on this tag, never on display-name strings.
type SpaceID uint8

const (
	SpaceRGB SpaceID = iota
	SpaceHSL
	SpaceHSV
	SpaceCMYK
	SpaceLab
	SpaceLCh
	SpaceXYZ
	SpaceYCbCr

	numSpaces
)

// String returns the display name of the color space.
func (id SpaceID) String() string {
	if int(id) < len(spaceTable) {
		return spaceTable[id].Name
	}
	return "unknown"
}

// Channel describes one slider of a color space. The metadata drives
// generic UI logic only; the conversion functions are hard-typed per
// space and never consult it.
type Channel struct {
	Key   string  // short key used in value maps ("h", "cb", ...)
	Label string  // human-readable label
	Min   float64 // lower bound of the declared range
	Max   float64 // upper bound of the declared range
	Unit  string  // display unit ("°", "%"), empty for plain numbers

	// Circular marks angular channels whose control wraps around
	// (hue); Dependent marks channels whose track gradient depends on
	// the current values of the other channels.
	Circular  bool
	Dependent bool
}

// Space is the static descriptor of a color space: its name and its
// ordered channel definitions.
type Space struct {
	ID       SpaceID
	Name     string
	Channels []Channel
}

// Channel returns the channel definition with the given key, or false
// when the space has no such channel.
func (s Space) Channel(key string) (Channel, bool) {
	for _, ch := range s.Channels {
		if ch.Key == key {
			return ch, true
		}
	}
	return Channel{}, false
}

var spaceTable = [numSpaces]Space{
	SpaceRGB: {
		ID:   SpaceRGB,
		Name: "RGB",
		Channels: []Channel{
			{Key: "r", Label: "Red", Min: 0, Max: 255},
			{Key: "g", Label: "Green", Min: 0, Max: 255},
			{Key: "b", Label: "Blue", Min: 0, Max: 255},
		},
	},
	SpaceHSL: {
		ID:   SpaceHSL,
		Name: "HSL",
		Channels: []Channel{
			{Key: "h", Label: "Hue", Min: 0, Max: 360, Unit: "°", Circular: true},
			{Key: "s", Label: "Saturation", Min: 0, Max: 100, Unit: "%", Dependent: true},
			{Key: "l", Label: "Lightness", Min: 0, Max: 100, Unit: "%", Dependent: true},
		},
	},
	SpaceHSV: {
		ID:   SpaceHSV,
		Name: "HSV",
		Channels: []Channel{
			{Key: "h", Label: "Hue", Min: 0, Max: 360, Unit: "°", Circular: true},
			{Key: "s", Label: "Saturation", Min: 0, Max: 100, Unit: "%", Dependent: true},
			{Key: "v", Label: "Value", Min: 0, Max: 100, Unit: "%", Dependent: true},
		},
	},
	SpaceCMYK: {
		ID:   SpaceCMYK,
		Name: "CMYK",
		Channels: []Channel{
			{Key: "c", Label: "Cyan", Min: 0, Max: 100, Unit: "%"},
			{Key: "m", Label: "Magenta", Min: 0, Max: 100, Unit: "%"},
			{Key: "y", Label: "Yellow", Min: 0, Max: 100, Unit: "%"},
			{Key: "k", Label: "Key", Min: 0, Max: 100, Unit: "%"},
		},
	},
	SpaceLab: {
		ID:   SpaceLab,
		Name: "Lab",
		Channels: []Channel{
			{Key: "l", Label: "Lightness", Min: 0, Max: 100},
			{Key: "a", Label: "a*", Min: -128, Max: 127, Dependent: true},
			{Key: "b", Label: "b*", Min: -128, Max: 127, Dependent: true},
		},
	},
	SpaceLCh: {
		ID:   SpaceLCh,
		Name: "LCh",
		Channels: []Channel{
			{Key: "l", Label: "Lightness", Min: 0, Max: 100},
			{Key: "c", Label: "Chroma", Min: 0, Max: 132, Dependent: true},
			{Key: "h", Label: "Hue", Min: 0, Max: 360, Unit: "°", Circular: true, Dependent: true},
		},
	},
	SpaceXYZ: {
		ID:   SpaceXYZ,
		Name: "XYZ",
		Channels: []Channel{
			{Key: "x", Label: "X", Min: 0, Max: 95.047},
			{Key: "y", Label: "Y", Min: 0, Max: 100},
			{Key: "z", Label: "Z", Min: 0, Max: 108.883},
		},
	},
	SpaceYCbCr: {
		ID:   SpaceYCbCr,
		Name: "YCbCr",
		Channels: []Channel{
			{Key: "y", Label: "Luma", Min: 0, Max: 255},
			{Key: "cb", Label: "Cb", Min: 0, Max: 255, Dependent: true},
			{Key: "cr", Label: "Cr", Min: 0, Max: 255, Dependent: true},
		},
	},
}

// Spaces returns the descriptors of every supported color space in
// declaration order. The returned slice is a fresh copy.
func Spaces() []Space {
	v := make([]Space, len(spaceTable))
	copy(v, spaceTable[:])
	return v
}

// SpaceByID returns the descriptor for the given id; ok is false for
// ids outside the supported set.
func SpaceByID(id SpaceID) (Space, bool) {
	if id >= numSpaces {
		return Space{}, false
	}
	return spaceTable[id], true
}

// SpaceByName returns the descriptor whose display name matches
// exactly. Intended for CLI/flag parsing, not for dispatch.
func SpaceByName(name string) (Space, bool) {
	for _, s := range spaceTable {
		if s.Name == name {
			return s, true
		}
	}
	return Space{}, false
}
