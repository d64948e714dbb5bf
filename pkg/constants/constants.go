// Package constants provides shared constants for the inventory-forecast application.
package constants

// MonthKeyLayout is the dotted month-key format used in config files,
// persisted data, and output.
const MonthKeyLayout = "2006.01"

// Forecast constants
const (
	// DaysPerWeek converts a daily sales rate into a weekly one
	DaysPerWeek = 7

	// DefaultDaysInMonth is the fallback day count for months missing from
	// the configured day table
	DefaultDaysInMonth = 30

	// DefaultEditableMonths is the number of future months opened for editing
	DefaultEditableMonths = 6
)

// Storage constants
const (
	// StorageKeyPrefix is prepended to a brand identifier to form its
	// persisted key
	StorageKeyPrefix = "forecast_inventory_"

	// StorageDriverMemory selects the in-process engine
	StorageDriverMemory = "memory"

	// StorageDriverSQLite selects the SQLite file engine
	StorageDriverSQLite = "sqlite"

	// DefaultStoragePath is the default SQLite file location
	DefaultStoragePath = "forecast.db"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the forecast API
	DefaultServerAddress = ":8080"
)
