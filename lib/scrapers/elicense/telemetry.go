package elicense

import (
	"elicense-watch/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("elicense-watch.lib.scrapers.elicense")

func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, tracer, out)
}
