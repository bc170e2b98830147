// Package style sets inline style declarations.
package style

import (
	"strconv"

	"github.com/octoberswimmer/mascui"
)

// Size is a CSS length such as "10px" or "100%".
type Size string

func Px(n int) Size {
	return Size(strconv.Itoa(n) + "px")
}

func Width(s Size) mascui.Applyer {
	return mascui.Style("width", string(s))
}

func MarginRight(s Size) mascui.Applyer {
	return mascui.Style("margin-right", string(s))
}

func FontSize(s Size) mascui.Applyer {
	return mascui.Style("font-size", string(s))
}

type DisplayOption string

const (
	DisplayBlock DisplayOption = "block"
	DisplayFlex  DisplayOption = "flex"
	DisplayNone  DisplayOption = "none"
)

func Display(d DisplayOption) mascui.Applyer {
	return mascui.Style("display", string(d))
}

// AlignOption positions flex children on the cross axis.
type AlignOption string

const (
	AlignStart  AlignOption = "flex-start"
	AlignCenter AlignOption = "center"
	AlignEnd    AlignOption = "flex-end"
)

func AlignItems(a AlignOption) mascui.Applyer {
	return mascui.Style("align-items", string(a))
}
