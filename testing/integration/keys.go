package integration

import "github.com/flowmetric/histz"

// Shared metric keys for all integration tests - consistent Key type usage.
const (
	// Common service metrics.
	RequestsKey histz.Key = "requests"
	ErrorsKey   histz.Key = "errors"
	LatencyKey  histz.Key = "latency"

	// Test metrics.
	TestCounterKey histz.Key = "test_counter"
	TestGaugeKey   histz.Key = "test_gauge"
	NewCounterKey  histz.Key = "new_counter"
	CounterKey     histz.Key = "counter"
	GaugeKey       histz.Key = "gauge"
	HistKey        histz.Key = "hist"
	TimerKey       histz.Key = "timer"
	FinalKey       histz.Key = "final"

	// Race test specific keys.
	TestHistogramKey   histz.Key = "test_histogram"
	TestTimerKey       histz.Key = "test_timer"
	HistogramKey       histz.Key = "histogram"
	SharedHistogramKey histz.Key = "shared_histogram"
	HighContentionKey  histz.Key = "high_contention"

	// Shared test keys.
	SharedCounterKey histz.Key = "shared_counter"
	SharedGaugeKey   histz.Key = "shared_gauge"
	SharedHistKey    histz.Key = "shared_hist"
	SharedTimerKey   histz.Key = "shared_timer"

	// Numbered keys for isolation tests.
	Counter1Key histz.Key = "counter1"
	Counter2Key histz.Key = "counter2"
	Gauge1Key   histz.Key = "gauge1"
	Gauge2Key   histz.Key = "gauge2"
	Timer1Key   histz.Key = "timer1"
	Timer2Key   histz.Key = "timer2"
	Hist1Key    histz.Key = "hist1"
	Hist2Key    histz.Key = "hist2"

	// Service pattern keys.
	ServiceOperationsKey histz.Key = "service.operations"
	ServiceErrorsKey     histz.Key = "service.errors"
	ServiceLatencyKey    histz.Key = "service.latency"

	// Helper metrics.
	HelperUsersCreatedKey histz.Key = "helper.users.created"
	HelperUsersDeletedKey histz.Key = "helper.users.deleted"
	HelperUserCreationKey histz.Key = "helper.user.creation"

	// Parallel test metrics.
	ParallelOperationsKey histz.Key = "parallel.operations"
	ParallelErrorsKey     histz.Key = "parallel.errors"

	// Additional specific test keys.
	SharedNameKey    histz.Key = "shared_name"
	OpsKey           histz.Key = "ops"
	StatusKey        histz.Key = "status"
	Test1Key         histz.Key = "test1"
	Test2Key         histz.Key = "test2"
	Test3Key         histz.Key = "test3"
	TestKey          histz.Key = "test"
	InstanceIDKey    histz.Key = "instance_id"
	ContaminationKey histz.Key = "contamination_test"
	TemperatureKey   histz.Key = "temperature"

	// Aggregation test keys.
	TaskCompletedKey   histz.Key = "task.completed"
	TasksProcessedKey  histz.Key = "tasks.processed"
	TaskDurationKey    histz.Key = "task.duration"
	TasksErrorsKey     histz.Key = "tasks.errors"
	WorkerStatusKey    histz.Key = "worker.status"
	ResponseTimeKey    histz.Key = "response.time"
	ResponseTimeP50Key histz.Key = "response.time.p50"
	ResponseTimeP95Key histz.Key = "response.time.p95"
	ResponseTimeP99Key histz.Key = "response.time.p99"
	RequestRateKey     histz.Key = "request.rate"
	RequestRateMaxKey  histz.Key = "request.rate.max"

	// Export test keys.
	HTTPRequestsTotalKey     histz.Key = "http_requests_total"
	HTTPErrorsTotalKey       histz.Key = "http_errors_total"
	HTTPConnectionsActiveKey histz.Key = "http_connections_active"
	HTTPRequestDurationKey   histz.Key = "http_request_duration_ms"

	// Memory pattern test keys - static replacements for dynamic keys.
	MemoryTestCounterKey histz.Key = "memory_test_counter"
	MemoryTestGaugeKey   histz.Key = "memory_test_gauge"
	MemoryTestHistKey    histz.Key = "memory_test_hist"

	// Service lifecycle test keys - static replacements for dynamic service metrics.
	ExternalAuthCallsKey        histz.Key = "external.auth.calls"
	ExternalAuthLatencyKey      histz.Key = "external.auth.latency"
	ExternalAuthSuccessKey      histz.Key = "external.auth.success"
	ExternalAuthErrorsKey       histz.Key = "external.auth.errors"
	ExternalAuthAvailabilityKey histz.Key = "external.auth.availability"

	ExternalDatabaseCallsKey        histz.Key = "external.database.calls"
	ExternalDatabaseLatencyKey      histz.Key = "external.database.latency"
	ExternalDatabaseSuccessKey      histz.Key = "external.database.success"
	ExternalDatabaseErrorsKey       histz.Key = "external.database.errors"
	ExternalDatabaseAvailabilityKey histz.Key = "external.database.availability"

	ExternalCacheCallsKey        histz.Key = "external.cache.calls"
	ExternalCacheLatencyKey      histz.Key = "external.cache.latency"
	ExternalCacheSuccessKey      histz.Key = "external.cache.success"
	ExternalCacheErrorsKey       histz.Key = "external.cache.errors"
	ExternalCacheAvailabilityKey histz.Key = "external.cache.availability"

	ExternalStorageCallsKey        histz.Key = "external.storage.calls"
	ExternalStorageLatencyKey      histz.Key = "external.storage.latency"
	ExternalStorageSuccessKey      histz.Key = "external.storage.success"
	ExternalStorageErrorsKey       histz.Key = "external.storage.errors"
	ExternalStorageAvailabilityKey histz.Key = "external.storage.availability"

	// Test pattern keys for isolation testing.
	PatternOperationsKey histz.Key = "pattern.operations"
	PatternLatencyKey    histz.Key = "pattern.latency"

	// Mock service keys.
	MockCallsKey   histz.Key = "mock.calls"
	MockLatencyKey histz.Key = "mock.latency"
	MockErrorsKey  histz.Key = "mock.errors"

	// Golden test keys.
	GoldenThroughputKey histz.Key = "golden.throughput"
	GoldenLatencyKey    histz.Key = "golden.latency"
	GoldenErrorRateKey  histz.Key = "golden.error_rate"
	GoldenDiffKey       histz.Key = "golden.diff"
)
