// Package templates holds the server-rendered pages of the public site.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed *.html
var files embed.FS

// Parse loads every page. Pages are addressed by file name, e.g. "home.html".
func Parse() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"price": func(v *float64) string {
			if v == nil {
				return "Custom quote"
			}
			return fmt.Sprintf("$%.2f", *v)
		},
		"date":       formatDate,
		"join":       strings.Join,
		"year":       func() int { return time.Now().Year() },
		"add":        func(a, b int) int { return a + b },
		"paragraphs": paragraphs,
		"truncate":   truncate,
	}
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if !t.IsZero() {
			return t.Format("January 2, 2006")
		}
	case *time.Time:
		if t != nil && !t.IsZero() {
			return t.Format("January 2, 2006")
		}
	}
	return ""
}

// paragraphs splits text on blank lines.
func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func truncate(n int, s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
