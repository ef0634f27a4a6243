package config

// GenerationsFile is the on-disk form of one environment's generation sequence.
type GenerationsFile struct {
	Generations []GenerationDTO `yaml:"generations"`
}

// GenerationDTO is one generation as written in YAML.
type GenerationDTO struct {
	ID            int               `yaml:"id"`
	Toolkits      map[string]string `yaml:"toolkits"`
	RuntimeLibs   map[string]string `yaml:"runtime_libs"`
	Pythons       map[string]string `yaml:"pythons"`
	Frameworks    []string          `yaml:"frameworks"`
	ExtraPackages []string          `yaml:"extra_packages"`
}
