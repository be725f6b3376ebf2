package config

import (
	"encoding/json"
	"os"
	"time"

	"scholartrack/internal/flagx"
	"scholartrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so latencies can be written either as strings like
// "1500ms" or as integer nanoseconds. After parsing, set fields are
// copied into the runtime Config.
type JsonConfig struct {
	DatabasePath       *string         `json:"database_path"`
	SessionSecret      *string         `json:"session_secret"`
	AuthLatency        *timex.Duration `json:"auth_latency"`
	ApplyLatency       *timex.Duration `json:"apply_latency"`
	CompetitionLow     *int            `json:"competition_low"`
	CompetitionHigh    *int            `json:"competition_high"`
	DeadlineWindowDays *int            `json:"deadline_window_days"`
	AdminEmail         *string         `json:"admin_email"`
	AdminPassword      *string         `json:"admin_password"`
	AdminName          *string         `json:"admin_name"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON layer. Read or unmarshal
// errors panic; config is resolved before anything else starts, and a
// broken config file should stop the program.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SessionSecret != nil {
		cfg.SessionSecret = *jc.SessionSecret
	}
	if jc.AuthLatency != nil {
		cfg.AuthLatency = time.Duration(jc.AuthLatency.Duration)
	}
	if jc.ApplyLatency != nil {
		cfg.ApplyLatency = time.Duration(jc.ApplyLatency.Duration)
	}
	if jc.CompetitionLow != nil {
		cfg.CompetitionLow = *jc.CompetitionLow
	}
	if jc.CompetitionHigh != nil {
		cfg.CompetitionHigh = *jc.CompetitionHigh
	}
	if jc.DeadlineWindowDays != nil {
		cfg.DeadlineWindowDays = *jc.DeadlineWindowDays
	}
	if jc.AdminEmail != nil {
		cfg.BootstrapAdminEmail = *jc.AdminEmail
	}
	if jc.AdminPassword != nil {
		cfg.BootstrapAdminPassword = *jc.AdminPassword
	}
	if jc.AdminName != nil {
		cfg.BootstrapAdminName = *jc.AdminName
	}
}
