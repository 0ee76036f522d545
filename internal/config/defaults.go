package config

const (
	defaultDataDir = "~/.local/share/prooflab"
	defaultLogDir  = "~/.local/share/prooflab/logs"

	defaultMinDateGroup     = 2
	defaultMinFilenameGroup = 3
	defaultMinCameraGroup   = 5
	defaultMaxSuggestions   = 10
	defaultPreviewPhotos    = 4

	defaultFilenameOverlapThreshold = 0.5

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Suggestions: Suggestions{
			MinDateGroup:                      defaultMinDateGroup,
			MinFilenameGroup:                  defaultMinFilenameGroup,
			MinCameraGroup:                    defaultMinCameraGroup,
			MaxSuggestions:                    defaultMaxSuggestions,
			PreviewPhotos:                     defaultPreviewPhotos,
			SuppressOverlappingFilenameGroups: true,
			FilenameOverlapThreshold:          defaultFilenameOverlapThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
