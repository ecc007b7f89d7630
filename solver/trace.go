// SPDX-License-Identifier: MIT

package solver

import (
	logging "github.com/ipfs/go-log/v2"
)

// Subsystem is the go-log subsystem name of every solver trace event.
const Subsystem = "eqsolver"

var log = logging.Logger(Subsystem)

// Trace opcodes.
const (
	opLoad      = "load"
	opPivotSwap = "pivot-swap"
	opStep      = "elimination-step"
	opSingular  = "singular"
	opCofactor  = "cofactor"
	opExtract   = "extract"
)

// SetLogLevel sets the level of the solver subsystem ("debug", "info", ...).
// Trace events of stores built WithDebug are logged at debug level.
func SetLogLevel(level string) error {
	return logging.SetLogLevel(Subsystem, level)
}

// tracer emits trace events for one store. Row dumps are rendered lazily,
// only when tracing is on.
type tracer struct {
	on      bool
	variant Variant
}

func (t tracer) event(op string, kv ...interface{}) {
	if !t.on {
		return
	}
	if t.variant != 0 {
		kv = append([]interface{}{"variant", t.variant.String()}, kv...)
	}
	log.Debugw(op, kv...)
}

func (t tracer) rows(op string, k int, dump func() string) {
	if !t.on {
		return
	}
	log.Debugf("%s variant=%s k=%d\n%s", op, t.variant, k, dump())
}
