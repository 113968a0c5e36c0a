package config

import (
	"encoding/json"
	"os"

	"github.com/mockview/mockview/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, set fields are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL    *string `json:"api_base_url"`
	SessionDBPath *string `json:"session_db_path"`
}

// parseJson loads configuration from the JSON file named by the -c/-config
// flags, if any. Absent keys keep their current values; unreadable or
// invalid files panic, configuration being unusable at that point.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.APIBaseURL != nil {
		config.APIBaseURL = *c.APIBaseURL
	}
	if c.SessionDBPath != nil {
		config.SessionDBPath = *c.SessionDBPath
	}
}
