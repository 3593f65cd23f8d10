package docstore

import "reflect"

// Filter selects documents of a collection.
type Filter interface {
	Match(doc Document) bool
}

type FilterFunc func(doc Document) bool

func (f FilterFunc) Match(doc Document) bool { return f(doc) }

// Eq matches documents whose field at path equals value.
func Eq(path string, value any) Filter {
	return FilterFunc(func(doc Document) bool {
		v, ok := doc.Get(path)
		return ok && reflect.DeepEqual(v, value)
	})
}

func And(filters ...Filter) Filter {
	return FilterFunc(func(doc Document) bool {
		for _, f := range filters {
			if !f.Match(doc) {
				return false
			}
		}
		return true
	})
}

func Or(filters ...Filter) Filter {
	return FilterFunc(func(doc Document) bool {
		for _, f := range filters {
			if f.Match(doc) {
				return true
			}
		}
		return false
	})
}

// Query targets one collection. A nil Filter selects every document.
type Query struct {
	Collection string
	Filter     Filter
}

func (q Query) matches(doc Document) bool {
	return q.Filter == nil || q.Filter.Match(doc)
}

// IDEq matches the document with the given id.
func IDEq(id string) Filter {
	return FilterFunc(func(doc Document) bool { return doc.ID == id })
}
