// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/internal/inventory"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/constants"
	"github.com/xuanm0221-dev/251114slowmoving-frs-sub001/pkg/monthkey"
)

// Configuration holds all configuration for inventory-forecast.
type Configuration struct {
	Forecast    ForecastConfig
	DaysInMonth map[string]int `yaml:"daysInMonth,omitempty"`
	// Months holds the raw monthly records per brand identifier. How these
	// records are produced (upload, API, ingestion job) is outside this
	// module; the config file is the injection point.
	Months  map[string]map[string]inventory.MonthData `yaml:"months,omitempty"`
	Brands  []Brand                                   `yaml:"brands,omitempty"`
	Storage StorageConfig                             `yaml:"storage,omitempty"`
	Logging LoggingConfig                             `yaml:"logging,omitempty"`
	Output  OutputConfig                              `yaml:"output,omitempty"`
	Server  ServerConfig                              `yaml:"server,omitempty"`
}

// ForecastConfig holds the forecast parameters.
type ForecastConfig struct {
	// StockWeek is the retail-planned buffer in weeks of projected sales.
	StockWeek float64
	// EditableMonths is how many future months are opened for editing.
	EditableMonths int
	// LatestActualMonth is the last month with actual data, dotted form.
	LatestActualMonth string
}

// Brand describes one entry of the brand registry. Only Identifier matters
// to the forecast core; the rest is display metadata carried for the
// presentation layer.
type Brand struct {
	Identifier  string
	Code        string
	DisplayPath string `yaml:"displayPath,omitempty"`
	DisplayName string `yaml:"displayName,omitempty"`
	Styling     string `yaml:"styling,omitempty"`
}

// StorageConfig selects and locates the persistence engine.
type StorageConfig struct {
	Driver string `yaml:"driver,omitempty"` // memory, sqlite
	Path   string `yaml:"path,omitempty"`   // sqlite file location
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the forecast API listener options
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// DefaultBrands is the built-in registry used when the config lists none.
var DefaultBrands = []Brand{
	{Identifier: "mlb", Code: "M", DisplayPath: "/mlb", DisplayName: "MLB"},
	{Identifier: "mlb-kids", Code: "I", DisplayPath: "/mlb-kids", DisplayName: "MLB KIDS"},
	{Identifier: "discovery", Code: "X", DisplayPath: "/discovery", DisplayName: "DISCOVERY"},
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.normalizeMonthKeys()
	configuration.ApplyDefaults()
	return &configuration, nil
}

// normalizeMonthKeys converts month keys from the compact form used in
// config files to the dotted form used everywhere else. Viper splits map
// keys on dots, so config files must write "202511" rather than "2025.11";
// already-dotted keys pass through unchanged.
func (conf *Configuration) normalizeMonthKeys() {
	conf.Forecast.LatestActualMonth = monthkey.ToDotted(conf.Forecast.LatestActualMonth)

	if len(conf.DaysInMonth) > 0 {
		table := make(map[string]int, len(conf.DaysInMonth))
		for month, days := range conf.DaysInMonth {
			table[monthkey.ToDotted(month)] = days
		}
		conf.DaysInMonth = table
	}

	for brand, months := range conf.Months {
		normalized := make(map[string]inventory.MonthData, len(months))
		for month, data := range months {
			normalized[monthkey.ToDotted(month)] = data
		}
		conf.Months[brand] = normalized
	}
}

// ApplyDefaults fills unset fields with their documented defaults.
func (conf *Configuration) ApplyDefaults() {
	if conf.Forecast.EditableMonths == 0 {
		conf.Forecast.EditableMonths = constants.DefaultEditableMonths
	}
	if len(conf.Brands) == 0 {
		conf.Brands = DefaultBrands
	}
	if conf.Storage.Driver == "" {
		conf.Storage.Driver = constants.StorageDriverMemory
	}
	if conf.Storage.Path == "" {
		conf.Storage.Path = constants.DefaultStoragePath
	}
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
}

// MonthDataFor returns the configured raw record for one brand and month,
// or nil when none was supplied.
func (conf *Configuration) MonthDataFor(brand, month string) *inventory.MonthData {
	brandMonths, ok := conf.Months[brand]
	if !ok {
		return nil
	}
	data, ok := brandMonths[month]
	if !ok {
		return nil
	}
	return &data
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Forecast.StockWeek <= 0 {
		warnings = append(warnings, fmt.Sprintf("stockWeek %g is not positive - retail-planned figures will be zero or negative", conf.Forecast.StockWeek))
	}

	if conf.Forecast.EditableMonths < 0 {
		warnings = append(warnings, fmt.Sprintf("editableMonths %d is negative - no months will be opened for editing", conf.Forecast.EditableMonths))
	}

	if conf.Forecast.LatestActualMonth != "" && !monthkey.Valid(conf.Forecast.LatestActualMonth) {
		warnings = append(warnings, fmt.Sprintf("latestActualMonth '%s' is not a valid YYYY.MM month key - editable months cannot be generated", conf.Forecast.LatestActualMonth))
	}

	for month, days := range conf.DaysInMonth {
		if !monthkey.Valid(month) {
			warnings = append(warnings, fmt.Sprintf("daysInMonth key '%s' is not a valid YYYY.MM month key", month))
		}
		if days < 0 || days > 31 {
			warnings = append(warnings, fmt.Sprintf("daysInMonth['%s'] = %d is outside 0..31", month, days))
		}
	}

	seen := make(map[string]bool)
	for _, brand := range conf.Brands {
		if brand.Identifier == "" {
			warnings = append(warnings, "brand registry contains an entry with an empty identifier")
			continue
		}
		if seen[brand.Identifier] {
			warnings = append(warnings, fmt.Sprintf("brand '%s' appears more than once in the registry", brand.Identifier))
		}
		seen[brand.Identifier] = true
	}

	switch conf.Storage.Driver {
	case constants.StorageDriverMemory, constants.StorageDriverSQLite:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown storage driver '%s' - falling back to %s", conf.Storage.Driver, constants.StorageDriverMemory))
	}

	return warnings
}
