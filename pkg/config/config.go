package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultDBPath archivo SQLite por defecto, relativo al directorio de trabajo.
const DefaultDBPath = "sales_products.db"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde flags, env y opcionalmente archivo).
type Config struct {
	App AppConfig
	DB  DBConfig
	Log LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// DBConfig configuración del archivo SQLite.
type DBConfig struct {
	Path string
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración. Prioridad: flags > variables de entorno > archivo > valores por defecto.
// Nombres esperados: APP_ENV, APP_NAME, DB_PATH, LOG_LEVEL. flags puede ser nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if flags != nil {
		if err := bindFlag(v, flags, "DB_PATH", "db"); err != nil {
			return nil, err
		}
		if err := bindFlag(v, flags, "LOG_LEVEL", "log-level"); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		DB: DBConfig{
			Path: v.GetString("DB_PATH"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
	}
	if strings.TrimSpace(cfg.DB.Path) == "" {
		cfg.DB.Path = DefaultDBPath
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "sales-ledger")
	v.SetDefault("DB_PATH", DefaultDBPath)
	v.SetDefault("LOG_LEVEL", "warn")
}

// bindFlag asocia un flag a la clave; solo gana sobre env/archivo si el usuario lo pasó.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) error {
	f := flags.Lookup(name)
	if f == nil {
		return nil
	}
	return v.BindPFlag(key, f)
}
