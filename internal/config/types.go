package config

type Config struct {
	Log    LogS    `mapstructure:"log"`
	Parse  ParseS  `mapstructure:"parse"`
	Output OutputS `mapstructure:"output"`
	Clock  ClockS  `mapstructure:"clock"`
}

type LogS struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ParseS struct {
	Lenient bool `mapstructure:"lenient"`
	Trim    bool `mapstructure:"trim"`
}

type OutputS struct {
	Format string `mapstructure:"format"`
}

type ClockS struct {
	CacheSize int64 `mapstructure:"cache_size"`
}

// Output formats.
const (
	OutputIMF     = "imf"
	OutputUnix    = "unix"
	OutputRFC3339 = "rfc3339"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)
