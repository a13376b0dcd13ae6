// Package dotpath reads optional values out of loosely typed documents such as
// decoded JSON. Missing segments, nulls and empty strings all count as absent.
package dotpath

import (
	"strconv"
	"strings"
	"sync"

	"github.com/ohler55/ojg/jp"
)

var exprCache sync.Map // path -> jp.Expr

// Get walks doc along the dot-separated path and returns the value found there,
// or fallback when any segment is missing, the value is nil, or it is "".
// Numeric segments index into lists. The value is returned as-is.
func Get(doc any, path string, fallback any) any {
	if doc == nil || strings.TrimSpace(path) == "" {
		return fallback
	}
	value := compile(path).First(doc)
	if absent(value) {
		return fallback
	}
	return value
}

// String is Get restricted to string values. Non-string values yield fallback.
func String(doc any, path, fallback string) string {
	if s, ok := Get(doc, path, nil).(string); ok {
		return s
	}
	return fallback
}

// List returns the list at path or nil.
func List(doc any, path string) []any {
	switch v := Get(doc, path, nil).(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		return v
	case []map[string]any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item)
		}
		return out
	}
	return nil
}

// Map returns the object at path or nil.
func Map(doc any, path string) map[string]any {
	if m, ok := Get(doc, path, nil).(map[string]any); ok {
		return m
	}
	return nil
}

// FirstString tries each path in order and returns the first present string.
func FirstString(doc any, fallback string, paths ...string) string {
	for _, p := range paths {
		if s := String(doc, p, ""); s != "" {
			return s
		}
	}
	return fallback
}

func absent(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func compile(path string) jp.Expr {
	if cached, ok := exprCache.Load(path); ok {
		return cached.(jp.Expr)
	}
	segments := strings.Split(path, ".")
	x := make(jp.Expr, 0, len(segments))
	for _, seg := range segments {
		if n, err := strconv.Atoi(seg); err == nil && n >= 0 {
			x = append(x, jp.Nth(n))
			continue
		}
		x = append(x, jp.Child(seg))
	}
	exprCache.Store(path, x)
	return x
}
