// Package codec encodes reports for output and storage.
//
// Persisted reports are plain JSON so that any tool can read them back.
package codec

import (
	"fmt"
	"sort"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var builtin = map[string]Codec{
	JSON{}.Name():       JSON{},
	IndentJSON{}.Name(): IndentJSON{},
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Lookup is ByName with an error that lists the accepted names.
func Lookup(name string) (Codec, error) {
	if c, ok := ByName(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("codec: unknown codec %q (want one of %v)", name, Names())
}

// Names returns the names of the built-in codecs in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
