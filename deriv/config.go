package deriv

// AxisOptions names the default scheme per operator kind for one axis.
// Labels are matched case-insensitively against the scheme name table:
// a whole-label match wins, otherwise the first letter decides, and an
// unresolvable label falls back to the table default with a logged
// diagnostic. An empty label selects the table default silently.
type AxisOptions struct {
	First  string `mapstructure:"first"`
	Second string `mapstructure:"second"`
	Upwind string `mapstructure:"upwind"`
	Flux   string `mapstructure:"flux"`
}

// Config is the scheme-selection surface, normally decoded from a
// configuration file (the mapstructure tags suit viper.Unmarshal) or
// built directly. It is consumed once by NewOperators; the resolved
// function bindings are immutable afterwards.
type Config struct {
	DDX AxisOptions `mapstructure:"ddx"`
	DDY AxisOptions `mapstructure:"ddy"`
	DDZ AxisOptions `mapstructure:"ddz"`

	// NumThreads sizes the traversal worker pool. Zero means one
	// worker per CPU; one forces serial execution.
	NumThreads int `mapstructure:"num_threads"`
}
