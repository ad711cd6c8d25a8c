package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultSourceURL is an archived copy of the Wikipedia list of largest banks.
const DefaultSourceURL = "https://web.archive.org/web/20230908091635/https://en.wikipedia.org/wiki/List_of_largest_banks"

// Supported DB_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds application configuration.
type Config struct {
	SourceURL   string        `mapstructure:"SOURCE_URL" validate:"required,url"`
	TableClass  string        `mapstructure:"TABLE_CLASS" validate:"required"`
	RatesFile   string        `mapstructure:"RATES_FILE" validate:"required"`
	CSVPath     string        `mapstructure:"CSV_PATH" validate:"required"`
	DBDriver    string        `mapstructure:"DB_DRIVER" validate:"required,oneof=sqlite postgres mysql"`
	DBDSN       string        `mapstructure:"DB_DSN" validate:"required"`
	TableName   string        `mapstructure:"TABLE_NAME" validate:"required,sqlident"`
	LogFile     string        `mapstructure:"LOG_FILE"` // Empty logs to the console only
	LogLevel    string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gt=0"`
	CacheRates  bool          `mapstructure:"CACHE_RATES"`
	RecordRuns  bool          `mapstructure:"RECORD_RUNS"`
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"source-url":   "SOURCE_URL",
	"table-class":  "TABLE_CLASS",
	"rates-file":   "RATES_FILE",
	"csv-path":     "CSV_PATH",
	"db-driver":    "DB_DRIVER",
	"db-dsn":       "DB_DSN",
	"table-name":   "TABLE_NAME",
	"log-file":     "LOG_FILE",
	"log-level":    "LOG_LEVEL",
	"http-timeout": "HTTP_TIMEOUT",
	"cache-rates":  "CACHE_RATES",
	"record-runs":  "RECORD_RUNS",
}

var sqlIdentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsSQLIdentifier reports whether name can be used unquoted as a table name.
func IsSQLIdentifier(name string) bool {
	return sqlIdentRegex.MatchString(name)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SOURCE_URL", DefaultSourceURL)
	v.SetDefault("TABLE_CLASS", "wikitable")
	v.SetDefault("RATES_FILE", "exchange_rate.csv")
	v.SetDefault("CSV_PATH", "Largest_banks_data.csv")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_DSN", "Banks.db")
	v.SetDefault("TABLE_NAME", "Largest_banks")
	v.SetDefault("LOG_FILE", "ETL.log")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("CACHE_RATES", true)
	v.SetDefault("RECORD_RUNS", true)
}

// RegisterFlags adds one flag per configuration key to fs.
// Flags only override a key when explicitly set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("source-url", DefaultSourceURL, "URL of the page holding the banks table")
	fs.String("table-class", "wikitable", "CSS class of the table to extract")
	fs.String("rates-file", "exchange_rate.csv", "CSV file with Currency,Rate columns")
	fs.String("csv-path", "Largest_banks_data.csv", "output CSV file")
	fs.String("db-driver", DriverSQLite, "database driver: sqlite, postgres or mysql")
	fs.String("db-dsn", "Banks.db", "database DSN (file path for sqlite)")
	fs.String("table-name", "Largest_banks", "destination table name")
	fs.String("log-file", "ETL.log", "progress log file, empty for console only")
	fs.String("log-level", "info", "minimum log level")
	fs.Duration("http-timeout", 30*time.Second, "timeout for fetching the source page")
	fs.Bool("cache-rates", true, "read the rate file once per run")
	fs.Bool("record-runs", true, "record each run in the etl_runs table")
}

// LoadConfig loads configuration from defaults, a .env file if present,
// environment variables and finally any flags set on fs. fs may be nil.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return IsSQLIdentifier(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
