package strmod

import (
	"strings"
)

// --- str module ---

type Str struct{}

func (*Str) Empty(s string) interface{} {
	return len(s) == 0
}

func (*Str) Blank(s string) interface{} {
	return strings.TrimSpace(s) == ""
}

func (*Str) Present(s string) interface{} {
	return strings.TrimSpace(s) != ""
}

func (*Str) OrBlank(val interface{}) interface{} {
	if val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	panic("str.or_blank: expected a string or nil")
}
