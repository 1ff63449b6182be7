package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Format interpolates template against args using positional curly-brace
// placeholders. See the package documentation for the placeholder grammar.
func Format(template string, args ...any) string {
	var b strings.Builder

	b.Grow(len(template) + 16)

	// next is the argument index consumed by the next implicit "{}".
	next := 0

	for i := 0; i < len(template); i++ {
		c := template[i]

		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++

				continue
			}

			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				// Unterminated placeholder: literal brace.
				b.WriteByte('{')

				continue
			}

			end += i

			if arg, ok := resolve(template[i+1:end], args, &next); ok {
				b.WriteString(arg)
			} else {
				// Unresolvable placeholder is preserved verbatim.
				b.WriteString(template[i : end+1])
			}

			i = end

		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}

			b.WriteByte('}')

		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// resolve renders the argument selected by the placeholder body. An empty
// body consumes the next implicit index; otherwise the body must be a
// non-negative decimal index into args.
func resolve(body string, args []any, next *int) (string, bool) {
	index := *next

	if body != "" {
		n, err := strconv.Atoi(body)
		if err != nil || n < 0 {
			return "", false
		}

		index = n
	} else {
		*next++
	}

	if index >= len(args) {
		return "", false
	}

	return fmt.Sprint(args[index]), true
}
