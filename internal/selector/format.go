package selector

import "strings"

// countIntVerbs counts the integer verbs in a fmt template, skipping "%%".
// ok is false when the template holds any other verb, an explicit argument
// index, or a dangling '%'.
func countIntVerbs(format string) (n int, ok bool) {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i < len(format) && format[i] == '.' {
			i++
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}
		if i >= len(format) {
			return n, false
		}
		switch format[i] {
		case 'd', 'v', 'x', 'X', 'o', 'O', 'b':
			n++
		default:
			return n, false
		}
	}
	return n, true
}

func validFormat(format string) bool {
	n, ok := countIntVerbs(format)
	return ok && n == 1
}
