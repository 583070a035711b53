package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

var (
	SimulatorTicks     atomic.Int64
	PlateLookups       atomic.Int64
	PlateLookupMisses  atomic.Int64
	DeliveryScans      atomic.Int64
	DeliveryScanMisses atomic.Int64
	RiskRecomputes     atomic.Int64
)

func HandleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "custody_simulator_ticks_total %d\n", SimulatorTicks.Load())
	fmt.Fprintf(w, "custody_plate_lookups_total %d\n", PlateLookups.Load())
	fmt.Fprintf(w, "custody_plate_lookup_misses_total %d\n", PlateLookupMisses.Load())
	fmt.Fprintf(w, "custody_delivery_scans_total %d\n", DeliveryScans.Load())
	fmt.Fprintf(w, "custody_delivery_scan_misses_total %d\n", DeliveryScanMisses.Load())
	fmt.Fprintf(w, "custody_risk_recomputes_total %d\n", RiskRecomputes.Load())
}
