package chesscom

import (
	"github.com/elibenporat/hikaru/lib/restyutil"
)

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput directs full request/response dumps to the
// given sink for every client constructed afterwards. Dumps are only
// produced while debug logging is enabled.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}
