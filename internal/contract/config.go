package contract

// SolverConfig holds the tunable penalty weights and solver behavior knobs
// listed in spec.md §6. Defaults follow a cascade the same way the
// teacher's internal/llm.LoadConfig overlays environment variables onto
// DefaultConfig(): start from DefaultSolverConfig(), then overlay any keys
// present in the request's raw solver_config map.
type SolverConfig struct {
	ClinicPenaltyBefore  float64
	ClinicPenaltySame    float64
	ClinicPenaltyAfter   float64
	LambdaRest           float64
	LambdaGap            float64
	LambdaED             float64
	LambdaStandby        float64
	LambdaMinOne         float64
	LambdaRegWeekend     float64
	LambdaUnitOver       float64
	LambdaJuniorWard     float64
	BigM                 float64
	SolverTimeoutSeconds int
}

// DefaultSolverConfig returns the spec.md §6 defaults.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		ClinicPenaltyBefore:  10,
		ClinicPenaltySame:    50,
		ClinicPenaltyAfter:   5,
		LambdaRest:           3,
		LambdaGap:            1,
		LambdaED:             6,
		LambdaStandby:        5,
		LambdaMinOne:         10,
		LambdaRegWeekend:     2,
		LambdaUnitOver:       25,
		LambdaJuniorWard:     6,
		BigM:                 10000,
		SolverTimeoutSeconds: 600,
	}
}

// solverConfigKeys maps the wire key names from spec.md §6 onto setter
// functions, so ResolveSolverConfig can overlay only the keys the caller
// actually supplied.
var solverConfigKeys = map[string]func(*SolverConfig, float64){
	"clinicPenaltyBefore":  func(c *SolverConfig, v float64) { c.ClinicPenaltyBefore = v },
	"clinicPenaltySame":    func(c *SolverConfig, v float64) { c.ClinicPenaltySame = v },
	"clinicPenaltyAfter":   func(c *SolverConfig, v float64) { c.ClinicPenaltyAfter = v },
	"lambdaRest":           func(c *SolverConfig, v float64) { c.LambdaRest = v },
	"lambdaGap":            func(c *SolverConfig, v float64) { c.LambdaGap = v },
	"lambdaED":             func(c *SolverConfig, v float64) { c.LambdaED = v },
	"lambdaStandby":        func(c *SolverConfig, v float64) { c.LambdaStandby = v },
	"lambdaMinOne":         func(c *SolverConfig, v float64) { c.LambdaMinOne = v },
	"lambdaRegWeekend":     func(c *SolverConfig, v float64) { c.LambdaRegWeekend = v },
	"lambdaUnitOver":       func(c *SolverConfig, v float64) { c.LambdaUnitOver = v },
	"lambdaJuniorWard":     func(c *SolverConfig, v float64) { c.LambdaJuniorWard = v },
	"bigM":                 func(c *SolverConfig, v float64) { c.BigM = v },
	"solverTimeoutSeconds": func(c *SolverConfig, v float64) { c.SolverTimeoutSeconds = int(v) },
}

// ResolveSolverConfig overlays raw onto DefaultSolverConfig(), ignoring
// unrecognized keys (the caller may pass forward-compatible keys this
// binary doesn't yet know).
func ResolveSolverConfig(raw map[string]float64) SolverConfig {
	cfg := DefaultSolverConfig()
	for k, v := range raw {
		if set, ok := solverConfigKeys[k]; ok {
			set(&cfg, v)
		}
	}
	return cfg
}
