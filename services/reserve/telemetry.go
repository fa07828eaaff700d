package reserve

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("elicense-watch.services.reserve")
