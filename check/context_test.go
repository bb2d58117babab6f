package check_test

import (
	"testing"

	"github.com/susji/minic/check"
	"github.com/susji/minic/diag"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typeexpr"
)

// newTestContext builds a ready-to-use Context with a fresh Sink and
// builtins table, the way every test in this package needs one.
func newTestContext() (*check.Context, *diag.Sink, *symbol.Builtins, *typeexpr.Registry) {
	builtins := symbol.NewBuiltins()
	registry := typeexpr.NewRegistry(builtins)
	sink := diag.New("t.mc0")
	return check.NewContext(sink, registry, builtins), sink, builtins, registry
}
