// File: internal/report/pathshort.go
package report

import "strings"

// PathShortcut rewrites one path prefix to a short module label.
type PathShortcut struct {
	Prefix string `json:"prefix" mapstructure:"prefix" yaml:"prefix"`
	Label  string `json:"label" mapstructure:"label" yaml:"label"`
}

// ShortcutTable is an ordered list of prefix rewrites. Order matters: Shorten
// applies the first matching entry and ignores the rest, so more specific
// prefixes must precede less specific ones.
type ShortcutTable []PathShortcut

// DefaultShortcuts returns the builtin table covering the proto-wrapper
// module layout the reports are generated from. Purely cosmetic; a URI that
// matches nothing passes through unchanged.
func DefaultShortcuts() ShortcutTable {
	return ShortcutTable{
		{Prefix: "proto-wrapper-core/src/main/java/io/alnovis/protowrapper/", Label: "core:"},
		{Prefix: "proto-wrapper-core/src/test/java/io/alnovis/protowrapper/", Label: "core-test:"},
		{Prefix: "proto-wrapper-maven-plugin/src/main/java/io/alnovis/protowrapper/", Label: "maven:"},
		{Prefix: "proto-wrapper-gradle-plugin/src/main/kotlin/io/alnovis/protowrapper/", Label: "gradle:"},
		{Prefix: "proto-wrapper-spring-boot-starter/", Label: "spring:"},
		{Prefix: "examples/", Label: "examples:"},
	}
}

// Shorten rewrites uri using the first shortcut whose prefix matches.
func (t ShortcutTable) Shorten(uri string) string {
	for _, s := range t {
		if strings.HasPrefix(uri, s.Prefix) {
			return s.Label + uri[len(s.Prefix):]
		}
	}
	return uri
}
