package appliance

import (
	"fmt"
	"io"
)

//Kind tags which household device a Device stands for
type Kind string

const (
	AirConditioner Kind = "airConditioner"
	Refrigerator   Kind = "refrigerator"
	Fan            Kind = "fan"
	GateOpener     Kind = "gateOpener"
	Television     Kind = "television"
)

//Kinds lists every supported kind
var Kinds = []Kind{AirConditioner, Refrigerator, Fan, GateOpener, Television}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func NewAirConditioner(name string, out io.Writer) *Device {
	return &Device{DisplayName: name, Kind: AirConditioner, Out: out}
}

func NewRefrigerator(name string, out io.Writer) *Device {
	return &Device{DisplayName: name, Kind: Refrigerator, Out: out}
}

func NewFan(name string, out io.Writer) *Device {
	return &Device{DisplayName: name, Kind: Fan, Out: out}
}

func NewGateOpener(name string, out io.Writer) *Device {
	return &Device{DisplayName: name, Kind: GateOpener, Out: out}
}

func NewTelevision(name string, out io.Writer) *Device {
	return &Device{DisplayName: name, Kind: Television, Out: out}
}

//New builds a device of the given kind. Used when the kinds come from config.
func New(kind Kind, name string, out io.Writer) (*Device, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("appliance kind %q is not supported -- only %v are supported", kind, Kinds)
	}
	if name == "" {
		return nil, fmt.Errorf("appliance of kind %q has no name", kind)
	}
	return &Device{DisplayName: name, Kind: kind, Out: out}, nil
}
