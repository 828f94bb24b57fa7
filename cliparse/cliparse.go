package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	CollectionFile string
	SelectionsFile string
	SampleSize     int
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pick-me-randomly", flag.ContinueOnError)

	// Network and database config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Spreadsheet sources
	fs.StringVar(&cfg.CollectionFile, "collection", "", "Collection workbook path")
	fs.StringVar(&cfg.SelectionsFile, "selections", "", "Selections workbook path")

	// Batch size presented per round
	fs.IntVar(&cfg.SampleSize, "n", 0, "Polishes sampled per batch")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8501 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.CollectionFile == "" {
		cfg.CollectionFile = os.Getenv("COLLECTION_FILE")
		if cfg.CollectionFile == "" {
			cfg.CollectionFile = "NPS.xlsx"
		}
	}
	if cfg.SelectionsFile == "" {
		cfg.SelectionsFile = os.Getenv("SELECTIONS_FILE")
		if cfg.SelectionsFile == "" {
			cfg.SelectionsFile = "NPS_Selections.xlsx"
		}
	}

	if cfg.SampleSize == 0 {
		if sizeStr := os.Getenv("SAMPLE_SIZE"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				return Config{}, errors.New("invalid SAMPLE_SIZE env variable")
			}
			cfg.SampleSize = size
		} else {
			cfg.SampleSize = 5 // default
		}
	}
	if cfg.SampleSize < 1 {
		return Config{}, errors.New("sample size must be at least 1")
	}

	return cfg, nil
}
