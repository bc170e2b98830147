// Package css keeps the style sheet shared by the widgets of one render pass.
//
// Widgets describe layout with a small closed set of rules. Each rule maps to
// a short class name; inserting the same rule twice yields the same class and
// a single declaration.
package css

import (
	"fmt"
	"sort"

	"github.com/octoberswimmer/mascui"
	"github.com/octoberswimmer/mascui/elem"
)

type ruleKind uint8

const (
	ruleColumn ruleKind = iota
	ruleRow
	rulePadding
	ruleSpacing
)

// Rule is a semantic style rule. Rules are comparable values.
type Rule struct {
	kind   ruleKind
	amount uint16
}

// Column lays children out vertically.
func Column() Rule { return Rule{kind: ruleColumn} }

// Row lays children out horizontally.
func Row() Rule { return Rule{kind: ruleRow} }

// Padding pads an element by px pixels on every side.
func Padding(px uint16) Rule { return Rule{kind: rulePadding, amount: px} }

// Spacing separates the children of a row or column by px pixels.
func Spacing(px uint16) Rule { return Rule{kind: ruleSpacing, amount: px} }

// Class returns the class name of the rule.
func (r Rule) Class() string {
	switch r.kind {
	case ruleColumn:
		return "c"
	case ruleRow:
		return "r"
	case rulePadding:
		return fmt.Sprintf("p-%d", r.amount)
	case ruleSpacing:
		return fmt.Sprintf("s-%d", r.amount)
	}
	panic(fmt.Sprintf("css: unknown rule kind %d", r.kind))
}

// Declaration returns the CSS text of the rule.
func (r Rule) Declaration() string {
	class := r.Class()
	switch r.kind {
	case ruleColumn:
		return fmt.Sprintf(".%s { display: flex; flex-direction: column; }", class)
	case ruleRow:
		return fmt.Sprintf(".%s { display: flex; flex-direction: row; }", class)
	case rulePadding:
		return fmt.Sprintf(".%s { box-sizing: border-box; padding: %dpx }", class, r.amount)
	case ruleSpacing:
		return fmt.Sprintf(
			".c.%[1]s > * { margin-bottom: %[2]dpx } "+
				".r.%[1]s > * { margin-right: %[2]dpx } "+
				".c.%[1]s > *:last-child { margin-bottom: 0 } "+
				".r.%[1]s > *:last-child { margin-right: 0 }",
			class, r.amount,
		)
	}
	panic(fmt.Sprintf("css: unknown rule kind %d", r.kind))
}

// baseDeclarations precede the rule declarations in every style sheet.
var baseDeclarations = []string{
	"html { height: 100% }",
	"body { height: 100%; margin: 0; padding: 0; font-family: sans-serif }",
	"p { margin: 0 }",
}

// StyleSheet collects the rules used during one render pass. It is not safe
// for concurrent use.
type StyleSheet struct {
	rules map[string]string
}

// NewStyleSheet returns an empty style sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{rules: make(map[string]string)}
}

// Insert registers rule and returns its class name. Inserting an equal rule
// again returns the same class and keeps a single declaration.
func (s *StyleSheet) Insert(rule Rule) string {
	class := rule.Class()
	if _, ok := s.rules[class]; !ok {
		s.rules[class] = rule.Declaration()
	}
	return class
}

// Len returns the number of distinct rules registered.
func (s *StyleSheet) Len() int {
	return len(s.rules)
}

// Declarations returns the registered rule declarations ordered by class.
func (s *StyleSheet) Declarations() []string {
	classes := make([]string, 0, len(s.rules))
	for class := range s.rules {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	decls := make([]string, 0, len(classes))
	for _, class := range classes {
		decls = append(decls, s.rules[class])
	}
	return decls
}

// Node returns a <style> element holding the base declarations followed by
// the registered rules.
func (s *StyleSheet) Node() *mascui.HTML {
	var children mascui.List
	for _, d := range baseDeclarations {
		children = append(children, mascui.Text(d))
	}
	for _, d := range s.Declarations() {
		children = append(children, mascui.Text(d))
	}
	return elem.Style(children)
}

// Length formats l as a CSS length.
func Length(l mascui.Length) string {
	switch l.Kind {
	case mascui.LengthUnits:
		return fmt.Sprintf("%dpx", l.Value)
	case mascui.LengthFill, mascui.LengthFillPortion:
		return "100%"
	default:
		return "auto"
	}
}
