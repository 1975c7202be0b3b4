package entities

import "sort"

// Entry est un message traduit : la clé sans crochets et la valeur sous forme
// de littéral entre guillemets doubles.
type Entry struct {
	Key   string
	Value string
}

// Collection associe les clés aux valeurs. L'ordre est toujours recalculé par tri.
type Collection struct {
	values map[string]string
}

func NewCollection() Collection {
	return Collection{values: make(map[string]string)}
}

// Set enregistre value sous key ; la dernière valeur l'emporte.
func (c Collection) Set(key, value string) {
	c.values[key] = value
}

func (c Collection) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c Collection) Len() int {
	return len(c.values)
}

// Sorted renvoie les entrées triées par clé, ordre lexicographique croissant.
func (c Collection) Sorted() []Entry {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: c.values[k]})
	}
	return out
}
