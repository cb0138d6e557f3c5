package switcher

import "github.com/oskoss/casa-bridge/appliance"

//ManualRemote implements the Switch interface using whatever voltage
// was last set. The voltage is read on every call, so changing it
// between TurnOn and TurnOff changes what TurnOff supplies.
type ManualRemote struct {
	remote
	voltage string
}

func NewManualRemote(device appliance.Appliance, voltage string) *ManualRemote {
	return &ManualRemote{remote: remote{kind: "manual", device: device}, voltage: voltage}
}

func (m *ManualRemote) SetVoltage(voltage string) {
	m.voltage = voltage
}

func (m *ManualRemote) Voltage() string {
	return m.voltage
}

func (m *ManualRemote) TurnOn() error {
	return m.turnOn(m.voltage)
}

func (m *ManualRemote) TurnOff() error {
	return m.turnOff(m.voltage)
}
