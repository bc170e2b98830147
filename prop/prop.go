// Package prop sets element attributes.
package prop

import "github.com/octoberswimmer/mascui"

// InputType is the type attribute of an <input>.
type InputType string

const (
	TypeButton   InputType = "button"
	TypeCheckbox InputType = "checkbox"
	TypeHidden   InputType = "hidden"
	TypeNumber   InputType = "number"
	TypeRadio    InputType = "radio"
	TypeText     InputType = "text"
)

func Type(t InputType) mascui.Applyer {
	return mascui.Attribute("type", string(t))
}

func ID(id string) mascui.Applyer {
	return mascui.Attribute("id", id)
}

// Name sets the name attribute. Radio inputs sharing a name form one
// exclusive group.
func Name(name string) mascui.Applyer {
	return mascui.Attribute("name", name)
}

func Value(v string) mascui.Applyer {
	return mascui.Attribute("value", v)
}

// For points a <label> at the control with the given id.
func For(id string) mascui.Applyer {
	return mascui.Attribute("for", id)
}

// Checked renders a bare checked attribute when on and nothing otherwise.
func Checked(on bool) mascui.Applyer {
	return mascui.BoolAttribute("checked", on)
}

func Disabled(on bool) mascui.Applyer {
	return mascui.BoolAttribute("disabled", on)
}
