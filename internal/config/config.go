package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Uploads Uploads
}

type DB struct {
	Driver      string `env:"DB_DRIVER"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Uploads struct {
	Dir string `env:"UPLOAD_DIR"`
}

// MustLoad reads configuration from the environment, optionally primed by a
// .env file in the working directory. Every setting has a usable local
// default, so a bare start works out of the box.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", ":4000")
	viper.SetDefault("db_driver", DriverSQLite)
	viper.SetDefault("database_uri", "data/secretarium.db")
	viper.SetDefault("migrations_path", "migrations/sqlite")
	viper.SetDefault("upload_dir", "public/uploads")

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			Driver:      viper.GetString("db_driver"),
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress: viper.GetString("run_address"),
		},
		Uploads: Uploads{
			Dir: viper.GetString("upload_dir"),
		},
	}
}
