package config

var Presets = map[string]*Config{
	"gentle": {
		Mass: 1.0, Stiffness: 10.0, Displacement: 1.0,
		Damping: 0.1, Duration: 10.0, FPS: 60,
	},
	"undamped": {
		Mass: 1.0, Stiffness: 10.0, Displacement: 1.0,
		Damping: 0.0, Duration: 10.0, FPS: 60,
	},
	"heavy": {
		Mass: 5.0, Stiffness: 10.0, Displacement: 2.0,
		Damping: 0.5, Duration: 30.0, FPS: 60,
	},
	// b just under 2*sqrt(k*m): envelope collapses within a few cycles.
	"near_critical": {
		Mass: 1.0, Stiffness: 10.0, Displacement: 1.0,
		Damping: 6.0, Duration: 5.0, FPS: 60,
	},
	"brief": {
		Mass: 1.0, Stiffness: 10.0, Displacement: 1.0,
		Damping: 0.1, Duration: 1.0, FPS: 60,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
