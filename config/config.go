package config

import (
	"fmt"

	"github.com/oskoss/casa-bridge/appliance"
)

type Configurator interface {
	GetAllFields() (config *CasaConfig, err error)
}

type CasaConfig struct {
	Name              string            `yaml:"name"`
	DelayMilliseconds int               `yaml:"delayMilliseconds"`
	Appliances        []ApplianceConfig `yaml:"appliances"`
	Automatic         AutomaticConfig   `yaml:"automatic"`
	Manual            ManualConfig      `yaml:"manual"`
}

type ApplianceConfig struct {
	Name string         `yaml:"name"`
	Kind appliance.Kind `yaml:"kind"`
}

//AutomaticConfig names the single appliance the automatic remote cycles
type AutomaticConfig struct {
	Appliance string `yaml:"appliance"`
}

//ManualConfig names the appliances the manual remote cycles, in order
type ManualConfig struct {
	Voltage    string   `yaml:"voltage"`
	Appliances []string `yaml:"appliances"`
}

//Default is the household used when no config file is given
func Default() *CasaConfig {
	return &CasaConfig{
		Name:              "BridgePattern",
		DelayMilliseconds: 2000,
		Appliances: []ApplianceConfig{
			{Name: "MicroMax Star Split AC", Kind: appliance.AirConditioner},
			{Name: "LG Single Door Refrigerator", Kind: appliance.Refrigerator},
			{Name: "Usha Fan", Kind: appliance.Fan},
			{Name: "Panasonic TV", Kind: appliance.Television},
			{Name: "GPS 3G Gate Door Opener", Kind: appliance.GateOpener},
		},
		Automatic: AutomaticConfig{Appliance: "GPS 3G Gate Door Opener"},
		Manual: ManualConfig{
			Voltage: "220 V",
			Appliances: []string{
				"MicroMax Star Split AC",
				"LG Single Door Refrigerator",
				"Usha Fan",
				"Panasonic TV",
			},
		},
	}
}

func (c *CasaConfig) Validate() error {
	if c.DelayMilliseconds < 0 {
		return fmt.Errorf("delayMilliseconds %d must not be negative", c.DelayMilliseconds)
	}
	known := make(map[string]bool, len(c.Appliances))
	for _, a := range c.Appliances {
		if a.Name == "" {
			return fmt.Errorf("appliance of kind %q has no name", a.Kind)
		}
		if !a.Kind.Valid() {
			return fmt.Errorf("appliance %q has unsupported kind %q", a.Name, a.Kind)
		}
		if known[a.Name] {
			return fmt.Errorf("appliance %q is defined more than once", a.Name)
		}
		known[a.Name] = true
	}
	if c.Automatic.Appliance != "" && !known[c.Automatic.Appliance] {
		return fmt.Errorf("automatic remote appliance %q is not defined", c.Automatic.Appliance)
	}
	for _, name := range c.Manual.Appliances {
		if !known[name] {
			return fmt.Errorf("manual remote appliance %q is not defined", name)
		}
	}
	return nil
}
