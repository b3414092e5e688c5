package config

const (
	defaultProjectsDir       = "~/.local/share/mcarve/projects"
	defaultLogDir            = "~/.local/share/mcarve/logs"
	defaultTargetCRS         = "EPSG:6677"
	defaultOffsetX           = -36000
	defaultOffsetY           = -29000
	defaultBatchSize         = 10
	defaultNodataValue       = -9999
	defaultCheckpointSeconds = 10
	defaultFloorSampleTiles  = 100
	defaultMinFreeGiB        = 1
	defaultWarpBinary        = "gdalwarp"
	defaultTranslateBinary   = "gdal_translate"
	defaultInfoBinary        = "gdalinfo"
	defaultGDALTimeout       = 600
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLanguage          = "en"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: defaultProjectsDir,
			LogDir:      defaultLogDir,
		},
		Pipeline: Pipeline{
			TargetCRS:         defaultTargetCRS,
			OffsetX:           defaultOffsetX,
			OffsetY:           defaultOffsetY,
			BatchSize:         defaultBatchSize,
			NodataValue:       defaultNodataValue,
			CheckpointSeconds: defaultCheckpointSeconds,
			FloorSampleTiles:  defaultFloorSampleTiles,
			MinFreeGiB:        defaultMinFreeGiB,
		},
		GDAL: GDAL{
			WarpBinary:      defaultWarpBinary,
			TranslateBinary: defaultTranslateBinary,
			InfoBinary:      defaultInfoBinary,
			TimeoutSeconds:  defaultGDALTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Locale: Locale{
			Language: defaultLanguage,
		},
	}
}
