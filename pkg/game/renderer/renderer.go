package renderer

import (
	"fmt"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// Markup spans look like FUNC{operand}:
//
//	GT{KEY}        translated message key
//	DIR{East}      a direction name
//	ACTION{grow}   a key or command; the first letter is highlighted
var regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([a-z A-Z0-9_,:()\-+]+)}`)

// dynamicGet looks up message keys only known at runtime
var dynamicGet = gotext.Get

// Translate returns the catalogue entry for key, or fallback when the loaded
// locale has none. Use it for entries that are format strings.
func Translate(key, fallback string) string {
	if msg := dynamicGet(key); msg != key {
		return msg
	}
	return fallback
}

// MarkupFunc renders the operand of one markup span
type MarkupFunc func(function, operand string) string

// Markup formats msg with args, then replaces each markup span with render's output.
// GT spans are translated before render sees them.
func Markup(msg string, args []any, render MarkupFunc) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	return regexpStringFunctions.ReplaceAllStringFunc(ret, func(span string) string {
		match := regexpStringFunctions.FindStringSubmatch(span)
		function, operand := match[1], match[2]
		if function == "GT" {
			operand = dynamicGet(operand)
		}
		return render(function, operand)
	})
}

// PlainMarkup formats msg and strips the markup, keeping the operands.
// Without args msg is not passed through Sprintf, so already formatted text is safe.
func PlainMarkup(msg string, args ...any) string {
	return Markup(msg, args, func(_, operand string) string {
		return operand
	})
}
