package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/automoto/starcarrier/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
