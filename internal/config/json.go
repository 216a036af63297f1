package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON settings file.
type StructuredJSONConfig struct {
	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Output struct {
		Format string `json:"format"`
		Get    string `json:"get"`
	} `json:"output,omitempty"`

	Loader struct {
		RootDir          string `json:"root_dir"`
		ProjectName      string `json:"project_name"`
		Environment      string `json:"environment"`
		WorkingDir       string `json:"working_dir"`
		SystemConfigDir  string `json:"system_config_dir"`
		AllowCodeModules bool   `json:"allow_code_modules"`
	} `json:"loader,omitempty"`

	Watch struct {
		Enabled  bool     `json:"enabled"`
		Debounce Duration `json:"debounce"`
	} `json:"watch,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
			Get:    jsonCfg.Output.Get,
		},
		Loader: Loader{
			RootDir:          jsonCfg.Loader.RootDir,
			ProjectName:      jsonCfg.Loader.ProjectName,
			Environment:      jsonCfg.Loader.Environment,
			WorkingDir:       jsonCfg.Loader.WorkingDir,
			SystemConfigDir:  jsonCfg.Loader.SystemConfigDir,
			AllowCodeModules: jsonCfg.Loader.AllowCodeModules,
		},
		Watch: Watch{
			Enabled:  jsonCfg.Watch.Enabled,
			Debounce: time.Duration(jsonCfg.Watch.Debounce),
		},
		SettingsFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
