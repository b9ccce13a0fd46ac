package metrics

// Well-known (module, file, binary) triples produced by the benchmark harness.
var (
	perfTest = Key{Module: "Uygulamalar", File: "performance_test.cpp", Binary: "perf_test"}
	optTest  = Key{Module: "Ileri", File: "optimization_analysis.cpp", Binary: "optimization_analysis"}
	dupTest  = Key{Module: "Temel", File: "duplicate_test.cpp", Binary: "duplicate_test"}
	webTest  = Key{Module: "Uygulamalar", File: "web_server.cpp", Binary: "web_server"}
)

// Metric names emitted by the harness.
const (
	MetricCopyDuration    = "copy_duration"
	MetricPoolDuration    = "pool_duration"
	MetricStrcmpDuration  = "strcmp_duration"
	MetricPointerDuration = "pointer_duration"
	MetricRodataSize      = "rodata_size"

	MetricAvgDirect   = "avg_direct"
	MetricAvgFunction = "avg_function"
	MetricAvgTemplate = "avg_template"

	MetricLiteralPoolingWorked = "literal_pooling_worked"

	MetricInefficientTotalTime = "inefficient_total_time"
	MetricOptimizedTotalTime   = "optimized_total_time"
	MetricPooledTotalTime      = "pooled_total_time"
)

func (k Key) with(metric string) Key {
	k.Metric = metric
	return k
}

// PerfKey names a metric of the performance_test binary.
func PerfKey(metric string) Key { return perfTest.with(metric) }

// OptimizationKey names a metric of the optimization_analysis binary.
func OptimizationKey(metric string) Key { return optTest.with(metric) }

// BasicsKey names a metric of the duplicate_test binary.
func BasicsKey(metric string) Key { return dupTest.with(metric) }

// WebServerKey names a metric of the web_server binary.
func WebServerKey(metric string) Key { return webTest.with(metric) }

// Index maps metric keys to records. It is built once and never mutated.
type Index struct {
	byKey map[Key]Record
}

// NewIndex indexes records in one pass. On duplicate keys the last record wins.
func NewIndex(records []Record) *Index {
	byKey := make(map[Key]Record, len(records))
	for _, r := range records {
		byKey[r.Key()] = r
	}
	return &Index{byKey: byKey}
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int { return len(ix.byKey) }

// Lookup returns the record for k. A missing key is a normal outcome.
func (ix *Index) Lookup(k Key) (Record, bool) {
	if ix == nil {
		return Record{}, false
	}
	r, ok := ix.byKey[k]
	return r, ok
}

// Number returns the finite numeric value for k. Records holding text,
// NaN or an infinity are reported as absent.
func (ix *Index) Number(k Key) (float64, bool) {
	r, ok := ix.Lookup(k)
	if !ok {
		return 0, false
	}
	return r.Value.Finite()
}

// Perf looks up a metric of the performance_test binary.
func (ix *Index) Perf(metric string) (Record, bool) { return ix.Lookup(PerfKey(metric)) }

// Optimization looks up a metric of the optimization_analysis binary.
func (ix *Index) Optimization(metric string) (Record, bool) { return ix.Lookup(OptimizationKey(metric)) }

// Basics looks up a metric of the duplicate_test binary.
func (ix *Index) Basics(metric string) (Record, bool) { return ix.Lookup(BasicsKey(metric)) }

// WebServer looks up a metric of the web_server binary.
func (ix *Index) WebServer(metric string) (Record, bool) { return ix.Lookup(WebServerKey(metric)) }

// CopyDuration is the buffer-copy run time of perf_test.
func (ix *Index) CopyDuration() (Record, bool) { return ix.Perf(MetricCopyDuration) }

// PoolDuration is the constant-pool run time of perf_test.
func (ix *Index) PoolDuration() (Record, bool) { return ix.Perf(MetricPoolDuration) }

// StrcmpDuration is the strcmp() comparison time of perf_test.
func (ix *Index) StrcmpDuration() (Record, bool) { return ix.Perf(MetricStrcmpDuration) }

// PointerDuration is the pointer comparison time of perf_test.
func (ix *Index) PointerDuration() (Record, bool) { return ix.Perf(MetricPointerDuration) }

// RodataSize is the .rodata section size of perf_test.
func (ix *Index) RodataSize() (Record, bool) { return ix.Perf(MetricRodataSize) }

// AvgDirect is the ns/op of direct literal access.
func (ix *Index) AvgDirect() (Record, bool) { return ix.Optimization(MetricAvgDirect) }

// AvgFunction is the ns/op of literal access through a function.
func (ix *Index) AvgFunction() (Record, bool) { return ix.Optimization(MetricAvgFunction) }

// AvgTemplate is the ns/op of literal access through a template.
func (ix *Index) AvgTemplate() (Record, bool) { return ix.Optimization(MetricAvgTemplate) }

// LiteralPoolingWorked returns the pooling flag record of duplicate_test.
func (ix *Index) LiteralPoolingWorked() (Record, bool) {
	return ix.Basics(MetricLiteralPoolingWorked)
}
