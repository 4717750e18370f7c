package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SeedEnv supplies the default for colgen's --seed flag. Compression is never
// taken from the environment: raw column files stay raw unless a flag says
// otherwise.
const SeedEnv = "COLSYNTH_SEED"

// Defaults holds flag defaults taken from the environment.
type Defaults struct {
	Seed uint64
}

// LoadDefaults reads the optional .env files (a missing file is not an
// error) and then the process environment. Variables already set in the
// environment win over .env entries.
func LoadDefaults(files ...string) (Defaults, error) {
	_ = godotenv.Load(files...)

	var d Defaults
	if raw := os.Getenv(SeedEnv); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return d, fmt.Errorf("invalid %s %q: %w", SeedEnv, raw, err)
		}
		d.Seed = seed
	}
	return d, nil
}
