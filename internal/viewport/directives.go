package viewport

import "strings"

// Directive is one comma-separated clause of a viewport meta tag's
// content attribute, e.g. "maximum-scale=1.0".
type Directive struct {
	Key   string
	Value string
	Raw   string
}

// Parse splits a content attribute into its directives. Clauses without
// an '=' keep an empty Value. Empty clauses are dropped.
func Parse(content string) []Directive {
	var out []Directive
	for _, clause := range strings.Split(content, ",") {
		raw := strings.TrimSpace(clause)
		if raw == "" {
			continue
		}
		d := Directive{Raw: raw}
		if key, val, ok := strings.Cut(raw, "="); ok {
			d.Key = strings.TrimSpace(key)
			d.Value = strings.TrimSpace(val)
		} else {
			d.Key = raw
		}
		out = append(out, d)
	}
	return out
}

// Missing returns the required substrings not present in content,
// preserving input order.
func Missing(content string, required []string) []string {
	var missing []string
	for _, want := range required {
		if !strings.Contains(content, want) {
			missing = append(missing, want)
		}
	}
	return missing
}
