package config

// LoggingConfig controls the planner's diagnostic output. The engine itself
// only logs through the context logger; this governs the default sink wired
// by the CLI.
type LoggingConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Format: json or text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Output: stdout, stderr or file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// FilePath is only consulted when Output is "file"
	FilePath string `mapstructure:"file_path"`
}
