package mascui

// LengthKind tells how a Length is measured.
type LengthKind uint8

const (
	// LengthShrink fills the least amount of space.
	LengthShrink LengthKind = iota
	// LengthFill fills all the remaining space.
	LengthFill
	// LengthFillPortion fills a proportional share of the remaining space.
	LengthFillPortion
	// LengthUnits is a fixed amount of pixels.
	LengthUnits
)

// Length is the strategy used to size an element along one axis. The zero
// value is Shrink.
type Length struct {
	Kind  LengthKind
	Value uint16
}

// Shrink returns a Length that fills the least amount of space.
func Shrink() Length { return Length{Kind: LengthShrink} }

// Fill returns a Length that fills all the remaining space.
func Fill() Length { return Length{Kind: LengthFill} }

// FillPortion returns a Length that fills portion shares of the remaining
// space.
func FillPortion(portion uint16) Length {
	return Length{Kind: LengthFillPortion, Value: portion}
}

// Units returns a fixed Length of the given amount of pixels.
func Units(px uint16) Length {
	return Length{Kind: LengthUnits, Value: px}
}
