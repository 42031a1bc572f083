package config

import (
	"encoding/json"
	"os"

	"github.com/rmsplatform/rms/internal/flagx"
	"github.com/rmsplatform/rms/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	DataDir             string         `json:"data_dir"`
	Standalone          *bool          `json:"standalone"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	GateTimeout         timex.Duration `json:"gate_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. Missing file path means no overlay; read or
// unmarshal errors panic (caller should recover if desired). Zero-valued
// JSON fields leave the existing Config values untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.Standalone != nil {
		cfg.Standalone = *jc.Standalone
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.GateTimeout.Duration != 0 {
		cfg.GateTimeout = jc.GateTimeout.Duration
	}
}
