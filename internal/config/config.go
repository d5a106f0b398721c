package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every file path the pipeline touches. Defaults mirror the
// vendor export layout under DataDir; each can be overridden through the
// environment (or a .env file) without any CLI surface.
type Config struct {
	DataDir   string
	DBPath    string
	OutputDir string

	AMDSpecPath        string
	AmpereAltraPath    string
	AmpereOnePath      string
	IntelDir           string
	GreenAlgorithmsRaw string
	GreenAlgorithmsOut string

	AMDThreadTablePath   string
	IntelThreadTablePath string

	MergedCSVPath string

	Verbose bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	dataDir := getEnv("TDP_DATA_DIR", filepath.Join(cwd, "data"))

	cfg := Config{
		DataDir:   dataDir,
		DBPath:    getEnv("TDP_DB_PATH", filepath.Join(dataDir, "tdpmerge.db")),
		OutputDir: getEnv("TDP_OUTPUT_DIR", filepath.Join(cwd, "out")),

		AMDSpecPath:        getEnv("TDP_AMD_SPEC", filepath.Join(dataDir, "AMD", "amd-all-specification.csv")),
		AmpereAltraPath:    getEnv("TDP_AMPERE_ALTRA_SPEC", filepath.Join(dataDir, "AMPERE", "ampere-altra-specification.csv")),
		AmpereOnePath:      getEnv("TDP_AMPERE_ONE_SPEC", filepath.Join(dataDir, "AMPERE", "ampere-one-specification.csv")),
		IntelDir:           getEnv("TDP_INTEL_DIR", filepath.Join(dataDir, "Intel")),
		GreenAlgorithmsRaw: getEnv("TDP_GREEN_ALGORITHMS_RAW", filepath.Join(dataDir, "GreenAlgorithms", "TDP_cpu.v2.2.csv")),
		GreenAlgorithmsOut: getEnv("TDP_GREEN_ALGORITHMS_OUT", filepath.Join(dataDir, "GreenAlgorithms", "TDP_cpu.v2.2.updated.csv")),

		AMDThreadTablePath:   getEnv("TDP_AMD_THREAD_TABLE", filepath.Join(dataDir, "threads", "amd.csv")),
		IntelThreadTablePath: getEnv("TDP_INTEL_THREAD_TABLE", filepath.Join(dataDir, "threads", "intel.csv")),

		MergedCSVPath: getEnv("TDP_MERGED_CSV", filepath.Join(dataDir, "TDP_cpu.v2.2.csv")),

		Verbose: getEnvBool("TDP_VERBOSE", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
