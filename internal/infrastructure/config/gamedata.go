package config

// GameDataConfig holds the static game-data source configuration
type GameDataConfig struct {
	// Path to the game data JSON file
	Path string `mapstructure:"path" validate:"required"`

	// ExpectedVersion, when set, must match the loaded file's version.
	// An empty value accepts any version.
	ExpectedVersion string `mapstructure:"expected_version"`
}
