package docstore

import "strings"

// Document is one record of a collection. Fields may nest maps,
// addressed with dotted paths such as "user1.userId".
type Document struct {
	ID     string
	Fields map[string]any
}

// Get resolves a dotted path.
func (d Document) Get(path string) (any, bool) {
	return getPath(d.Fields, path)
}

func getPath(fields map[string]any, path string) (any, bool) {
	var current any = fields
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// setPath writes value at a dotted path, creating intermediate maps.
func setPath(fields map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := fields
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
