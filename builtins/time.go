package builtins

import (
	"time"

	"github.com/brewlang/brew/env"
	"github.com/brewlang/brew/value"
)

// installTime wires spec.md §6.3's `time` global: just `now`, grounded on
// the teacher's std/time.go `now` (the rest of that file's surface —
// now_ms, utc_now, format_time, parse_time, timezone — is outside the
// `time` entry SPEC_FULL.md names; see DESIGN.md).
func installTime(globals *env.Environment) {
	globals.Define("time", namedObject(
		value.NewNative("now", value.Fixed(0), timeNow),
	))
}

func timeNow(args []value.Value) (value.Value, error) {
	return value.Int(time.Now().Unix()), nil
}
