package config

var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			System: "lorenz", Solver: "dp5", Time: 100.0, Dt: 0.01,
			State: []float64{1.0, 1.0, 1.0},
		},
		"transient": {
			System: "lorenz", Solver: "dp5", Time: 10.0, Dt: 0.005,
			State: []float64{0.0, 10.0, 0.0},
		},
	},
	"rossler": {
		"classic": {
			System: "rossler", Solver: "dp5", Time: 200.0, Dt: 0.05,
			State: []float64{1.0, 1.0, 1.0},
		},
	},
	"vanderpol": {
		"limit_cycle": {
			System: "vanderpol", Solver: "dp5", Time: 30.0, Dt: 0.02,
			State: []float64{2.0, 0.0},
		},
		"stiffish": {
			System: "vanderpol", Solver: "dp5", Time: 30.0, Dt: 0.02,
			AbsTol: 1e-9, RelTol: 1e-7,
			State: []float64{2.0, 0.0},
		},
	},
	"duffing": {
		"forced": {
			System: "duffing", Solver: "dp5", Time: 60.0, Dt: 0.02,
			State: []float64{1.0, 0.0, 0.0},
		},
	},
	"harmonic": {
		"unit": {
			System: "harmonic", Solver: "rk4", Time: 20.0, Dt: 0.01,
			State: []float64{1.0, 0.0},
		},
	},
	"decay": {
		"unit": {
			System: "decay", Solver: "dp5", Time: 5.0, Dt: 0.05,
			State: []float64{1.0},
		},
	},
}

func GetPreset(systemName, preset string) *Config {
	systemPresets, ok := Presets[systemName]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(systemName string) []string {
	systemPresets, ok := Presets[systemName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
