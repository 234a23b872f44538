// Package filetype defines the closed set of file types ftdetect can report.
//
// Every FileType has a unique lowercase canonical name and zero or more
// aliases accepted by Parse. The zero value is Text, the plain-text default.
package filetype

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknown is returned by Parse for names that are neither a canonical name
// nor an alias.
var ErrUnknown = errors.New("unknown file type")

// FileType identifies a recognized language or file kind.
type FileType uint16

// String returns the canonical name.
func (ft FileType) String() string {
	if int(ft) < len(names) {
		return names[ft]
	}
	return fmt.Sprintf("filetype(%d)", uint16(ft))
}

// Valid reports whether ft is one of the declared constants.
func (ft FileType) Valid() bool {
	return int(ft) < len(names)
}

// Aliases returns the alternate names ft answers to, in declared order.
func (ft FileType) Aliases() []string {
	return slices.Clone(aliases[ft])
}

// MarshalText implements encoding.TextMarshaler.
func (ft FileType) MarshalText() ([]byte, error) {
	if !ft.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknown, uint16(ft))
	}
	return []byte(names[ft]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ft *FileType) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*ft = v
	return nil
}

var byName = func() map[string]FileType {
	m := make(map[string]FileType, len(names)+len(aliases))
	for i, name := range names {
		m[name] = FileType(i)
	}
	for ft, list := range aliases {
		for _, a := range list {
			m[a] = ft
		}
	}
	return m
}()

// Parse looks up a canonical name or alias, ignoring case and surrounding
// space.
func Parse(name string) (FileType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if ft, ok := byName[key]; ok {
		return ft, nil
	}
	return Text, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// All returns every file type, Text first and the rest ordered by
// identifier.
func All() []FileType {
	all := make([]FileType, len(names))
	for i := range all {
		all[i] = FileType(i)
	}
	return all
}
