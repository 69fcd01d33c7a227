package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Batch bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("LJ_DEBUG_PARSE")
	d.Batch = boolEnv("LJ_DEBUG_BATCH")
	d.Patch = boolEnv("LJ_DEBUG_PATCH")
	d.Query = boolEnv("LJ_DEBUG_QUERY")
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
func Batch() bool {
	return d.Batch
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
