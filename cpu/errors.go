package cpu

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// log is this package's structured logger. It is silent on the hot
// path by design: the only events logged are
// specialization selection at device init and fatal aborts.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("component", "cpu").Logger()

// Assert aborts the process if cond is false. Assertion failures in
// this package are programmer errors — bounds overruns, sync primitive
// misuse, unsupported operations — never recoverable user errors (see
// spec §7). Mirrors the source's mag_assert2.
func Assert(cond bool, msg string) {
	if !cond {
		Fatalf("%s", msg)
	}
}

// Fatalf logs msg at error level and panics. There is no recovery path:
// a kernel is contractually total over valid input, and a pool does
// not recover from a kernel panic either.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Error().Msg(msg)
	panic(msg)
}
