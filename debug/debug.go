// Package debug provides environment controlled trace output for the
// decoders in this module.
//
// Each area is switched on by a boolean environment variable read once at
// startup:
//
//	MXL_DEBUG_DECODE  scalar and enumeration decoding
//	MXL_DEBUG_UNION   union candidate resolution
//	MXL_DEBUG_RECORD  record assembly
//	MXL_DEBUG_WIRE    transport adapters
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Union  bool
	Record bool
	Wire   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("MXL_DEBUG_DECODE")
	d.Union = boolEnv("MXL_DEBUG_UNION")
	d.Record = boolEnv("MXL_DEBUG_RECORD")
	d.Wire = boolEnv("MXL_DEBUG_WIRE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Union() bool {
	return d.Union
}
func Record() bool {
	return d.Record
}
func Wire() bool {
	return d.Wire
}
