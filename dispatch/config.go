package dispatch

type Config struct {
	// SchemaCheck enables advisory schema checks on device payloads.
	// Mismatches are logged, never rejected.
	SchemaCheck bool `conf:"schema_check"`

	// ReportDeviceErrors forwards /api/error reports to Sentry, if a
	// Sentry client is configured.
	ReportDeviceErrors bool `conf:"report_device_errors"`
}
