// Package debug provides environment controlled debug logging for the bms
// packages.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	GoMap bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("BMS_DEBUG_PARSE")
	d.GoMap = boolEnv("BMS_DEBUG_GOMAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func GoMap() bool {
	return d.GoMap
}
