// Package ir provides the token tree handed from a transport reader to the
// record assembler.
//
// A transport reader (XML, YAML, TOML, ...) demultiplexes its input into
// named fields. The result is a tree of [Node] values:
//
//   - NullType: an explicitly empty value, treated like an absent field
//   - StringType: a raw wire token, not yet validated
//   - ObjectType: ordered named fields; Fields[i] names Values[i]
//   - ArrayType: repeated values of one field
//
// An ObjectType node may also carry character content in String, which is
// how an XML element with both attributes and text is represented.
//
// The tree never holds typed values: all interpretation of tokens happens in
// the decoders consuming it. A field which does not occur in an object is
// absent; [Get] returns nil for it.
//
// Nodes keep parent links so that [Node.Path] can render the location of a
// token for error reporting:
//
//	node.Path() // e.g. "$.attributes.key.fifths"
package ir
