// Package simpletype defines the MusicXML simple types as Go types.
//
// Every type implements encoding.TextMarshaler and encoding.TextUnmarshaler,
// so that the record package and the standard encoders decode wire tokens
// through the type's constraint:
//
//   - bounded numerics such as Midi16 or Percent check the XML Schema
//     lexical form and then their inclusive range,
//   - pattern types such as Color keep the token unchanged once it matches
//     in full,
//   - enumerations such as AccidentalValue map labels exactly through a
//     label table registered under the MusicXML type name,
//   - unions such as NumberOrNormal try their member shapes in a fixed order.
//
// All tables and descriptors are built during package initialisation and
// are read-only afterwards.
package simpletype
