package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/hitbox-arena/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	DrawVolumes bool `json:"drawVolumes"`
	ShowHUD     bool `json:"showHUD"`
	LogHits     bool `json:"logHits"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hitbox-arena",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the live debug preferences.
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		DrawVolumes: cfg.Debug.DrawVolumes,
		ShowHUD:     cfg.Debug.ShowHUD,
		LogHits:     cfg.Debug.LogHits,
	}
}

// ApplySavedSettings copies loaded preferences into the debug configuration.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.DrawVolumes = saved.DrawVolumes
	cfg.Debug.ShowHUD = saved.ShowHUD
	cfg.Debug.LogHits = saved.LogHits
}
