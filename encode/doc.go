// Package encode renders Hexon value trees to JSON or YAML text.
//
// The JSON rendering contract:
//
//   - numbers render in signed base-10 decimal
//   - strings render verbatim between double quotes, with NO escaping of
//     embedded quote or backslash characters (opt in to strict JSON with
//     [EscapeStrings])
//   - booleans render as true/false
//   - arrays render single-line as [a, b, c] regardless of nesting depth
//   - an empty object renders as {}; otherwise one "key": value pair per
//     line, keys in ascending lexicographic order, indented two spaces
//     per nesting level
//
// Encoding is a pure function of the tree: re-encoding any number of
// times yields byte-identical output, and no trailing newline is
// appended.
package encode
