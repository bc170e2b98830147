package widget

import "image/color"

// CheckboxStyle is the appearance of a checkbox in one state.
type CheckboxStyle struct {
	Background     color.Color
	CheckmarkColor color.Color
	BorderRadius   uint16
	BorderWidth    uint16
	BorderColor    color.Color
}

// CheckboxStyleSheet chooses the appearance of a checkbox.
type CheckboxStyleSheet interface {
	Active(isChecked bool) CheckboxStyle
	Hovered(isChecked bool) CheckboxStyle
}

// DefaultCheckboxStyle is the style sheet used when none is set.
type DefaultCheckboxStyle struct{}

func (DefaultCheckboxStyle) Active(isChecked bool) CheckboxStyle {
	return CheckboxStyle{
		Background:     color.RGBA{R: 242, G: 242, B: 242, A: 255},
		CheckmarkColor: color.RGBA{R: 77, G: 77, B: 77, A: 255},
		BorderRadius:   5,
		BorderWidth:    1,
		BorderColor:    color.RGBA{R: 153, G: 153, B: 153, A: 255},
	}
}

func (d DefaultCheckboxStyle) Hovered(isChecked bool) CheckboxStyle {
	s := d.Active(isChecked)
	s.Background = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	return s
}

// RadioStyle is the appearance of a radio button in one state.
type RadioStyle struct {
	Background  color.Color
	DotColor    color.Color
	BorderWidth uint16
	BorderColor color.Color
}

// RadioStyleSheet chooses the appearance of a radio button.
type RadioStyleSheet interface {
	Active() RadioStyle
	Hovered() RadioStyle
}

// DefaultRadioStyle is the style sheet used when none is set.
type DefaultRadioStyle struct{}

func (DefaultRadioStyle) Active() RadioStyle {
	return RadioStyle{
		Background:  color.RGBA{R: 242, G: 242, B: 242, A: 255},
		DotColor:    color.RGBA{R: 77, G: 77, B: 77, A: 255},
		BorderWidth: 1,
		BorderColor: color.RGBA{R: 153, G: 153, B: 153, A: 255},
	}
}

func (d DefaultRadioStyle) Hovered() RadioStyle {
	s := d.Active()
	s.Background = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	return s
}
