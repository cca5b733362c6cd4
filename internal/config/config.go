// Package config loads service settings from .env, environment variables,
// an optional YAML file and, when asked, the AWS parameter store.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"founderreach/internal/database"
)

// Keys understood in the environment and the config file.
const (
	KeyServerPort     = "server_port"
	KeyCORSOrigins    = "cors_origins"
	KeyDBDriver       = "db_driver"
	KeyDatabaseURL    = "database_url"
	KeyDBUser         = "db_user"
	KeyDBPassword     = "db_password"
	KeyDBHost         = "db_host"
	KeyDBPort         = "db_port"
	KeyDBName         = "db_name"
	KeyDBPath         = "db_path"
	KeyPINRequired    = "pin_required"
	KeySessionMinutes = "session_minutes"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
)

// Config is the resolved service configuration.
type Config struct {
	Port           int
	CORSOrigins    string
	DB             database.DBI
	PINRequired    bool
	SessionMinutes int
	LogLevel       string
	LogFormat      string
}

// Options selects the configuration sources.
type Options struct {
	ConfigFile string // YAML file, optional
	EnvFile    string // dotenv file, ".env" when empty
	ParamPath  string // AWS SSM parameter path, optional
	Region     string // AWS region for ParamPath
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerPort, 8000)
	v.SetDefault(KeyCORSOrigins, "*")
	v.SetDefault(KeyDBDriver, database.DriverSQLite)
	v.SetDefault(KeyDBHost, "localhost")
	v.SetDefault(KeyDBPath, "founderreach.db")
	v.SetDefault(KeyPINRequired, false)
	v.SetDefault(KeySessionMinutes, 30)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Load resolves the configuration. Later sources win: defaults, config file,
// environment (after the dotenv file is applied), parameter store.
func Load(opts Options) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
		log.Infof("config file loaded: %s", v.ConfigFileUsed())
	}

	cfg := &Config{
		Port:        v.GetInt(KeyServerPort),
		CORSOrigins: v.GetString(KeyCORSOrigins),
		DB: database.DBI{
			Driver:   strings.ToLower(v.GetString(KeyDBDriver)),
			User:     v.GetString(KeyDBUser),
			Password: v.GetString(KeyDBPassword),
			Endpoint: v.GetString(KeyDBHost),
			Port:     v.GetInt(KeyDBPort),
			Database: v.GetString(KeyDBName),
			Path:     v.GetString(KeyDBPath),
			DSN:      v.GetString(KeyDatabaseURL),
		},
		PINRequired:    v.GetBool(KeyPINRequired),
		SessionMinutes: v.GetInt(KeySessionMinutes),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
	}

	if opts.ParamPath != "" {
		repository, err := paramLoader(opts.Region, opts.ParamPath)
		if err != nil {
			return nil, fmt.Errorf("load parameter store %s: %w", opts.ParamPath, err)
		}
		if err := cfg.applyRepository(repository); err != nil {
			return nil, err
		}
		log.Infof("database settings loaded from parameter store: %s", opts.ParamPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(path string) {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			log.Warnf("env file not found: %s", path)
		}
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Warnf("env file %s ignored: %v", path, err)
	}
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case database.DriverMySQL, database.DriverPostgres, database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DB.Driver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid server_port %d", c.Port)
	}
	if c.SessionMinutes <= 0 {
		return errors.New("session_minutes must be positive")
	}
	if c.DB.Driver == database.DriverSQLite && c.DB.DSN == "" && c.DB.Path == "" {
		return errors.New("db_path is required for sqlite")
	}
	if c.DB.Driver != database.DriverSQLite && c.DB.DSN == "" && c.DB.Database == "" {
		return fmt.Errorf("db_name or database_url is required for %s", c.DB.Driver)
	}
	return nil
}

// applyRepository overrides the database settings with the 'repository'
// block of the parameter store (User, Password, Endpoint, Port, Database, optional Driver).
func (c *Config) applyRepository(repo map[string]interface{}) error {
	if len(repo) == 0 {
		return errors.New("parameter store has no repository block")
	}

	c.DB.Driver = database.DriverMySQL
	if d := stringValue(repo["Driver"]); d != "" {
		c.DB.Driver = strings.ToLower(d)
	}
	c.DB.User = stringValue(repo["User"])
	c.DB.Password = stringValue(repo["Password"])
	c.DB.Endpoint = stringValue(repo["Endpoint"])
	c.DB.Database = stringValue(repo["Database"])
	c.DB.DSN = ""

	port, err := intValue(repo["Port"])
	if err != nil {
		return fmt.Errorf("repository Port: %w", err)
	}
	c.DB.Port = port
	return nil
}

func stringValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func intValue(v interface{}) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(t)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
