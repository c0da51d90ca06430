package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

// markupPattern matches FUNCTION{operand} spans in messages
var markupPattern = regexp.MustCompile(`([A-Z_]+){([a-z A-Z0-9_,:]+)}`)

// Styler turns text into its styled form for one backend
type Styler func(text string, style TextStyle) string

// PlainStyle leaves text unstyled
func PlainStyle(text string, _ TextStyle) string {
	return text
}

// ApplyMarkup formats msg and expands its markup using style.
//
//	GT{KEY}       translated string
//	ROOM{text}    room name
//	ENEMY{text}   enemy reference
//	DMG{n}        damage figure
//	ACTION{text}  key hint, first letter emphasised
//
// Unknown functions are replaced by their operand.
func ApplyMarkup(style Styler, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range markupPattern.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = style(operand, StyleRoom)
		case "ENEMY":
			val = style(operand, StyleEnemy)
		case "DMG":
			val = style(operand, StyleDamage)
		case "ACTION":
			val = style(operand[0:1], StyleActionShort) + style(operand[1:], StyleAction)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// StripMarkup removes markup, keeping operands and translating GT keys
func StripMarkup(msg string) string {
	return ApplyMarkup(PlainStyle, "%s", msg)
}
