// Package config handles client configuration loading and management.
package config

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Game     GameConfig     `yaml:"game"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// CameraConfig holds first-person camera tuning.
type CameraConfig struct {
	FovYDeg         float32 `yaml:"fov_y_deg"`
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	MoveSpeed       float32 `yaml:"move_speed"`
	// LookSensitivity is in radians per accumulated mouse unit per second.
	LookSensitivity float32 `yaml:"look_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	Language string `yaml:"language"`
	ShowFPS  bool   `yaml:"show_fps"`
}

// DataConfig holds game data file paths. Files that do not exist are
// created with defaults on first run.
type DataConfig struct {
	AssetsDir      string `yaml:"assets_dir"`
	BoardFile      string `yaml:"board_file"`
	CardsFile      string `yaml:"cards_file"`
	CharactersFile string `yaml:"characters_file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Camera: CameraConfig{
			FovYDeg:         60,
			Near:            0.1,
			Far:             500,
			MoveSpeed:       6,
			LookSensitivity: 0.15,
			ZoomSensitivity: 2,
		},
		Game: GameConfig{
			Language: "en",
			ShowFPS:  false,
		},
		Data: DataConfig{
			AssetsDir:      "assets",
			BoardFile:      "data/board.json",
			CardsFile:      "data/action_cards.json",
			CharactersFile: "data/characters.json",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
