package wrap

import (
	"fmt"
	"reflect"
	"strings"
)

// expand substitutes template placeholders. pairs alternates between
// placeholder and replacement, as with strings.NewReplacer.
func expand(tmpl string, pairs ...string) string {
	if !strings.ContainsRune(tmpl, '{') {
		return tmpl
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// formatArgs renders an argument list as "(a, b, c)"
func formatArgs(args []reflect.Value) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(&b, a)
	}
	b.WriteByte(')')
	return b.String()
}

// formatResult renders a result list: a single value as itself,
// anything else as a tuple.
func formatResult(results []reflect.Value) string {
	if len(results) == 1 {
		var b strings.Builder
		writeValue(&b, results[0])
		return b.String()
	}
	return formatArgs(results)
}

func writeValue(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("<invalid>")
		return
	}
	if v.Kind() == reflect.String {
		fmt.Fprintf(b, "%q", v.String())
		return
	}
	fmt.Fprintf(b, "%v", v.Interface())
}
