package switcher

import "github.com/oskoss/casa-bridge/appliance"

//DefaultVoltage is what an AutomaticRemote always supplies
const DefaultVoltage = "240 V"

//AutomaticRemote implements the Switch interface with a fixed voltage,
// whatever appliance it is bound to.
type AutomaticRemote struct {
	remote
}

func NewAutomaticRemote(device appliance.Appliance) *AutomaticRemote {
	return &AutomaticRemote{remote: remote{kind: "automatic", device: device}}
}

func (a *AutomaticRemote) TurnOn() error {
	return a.turnOn(DefaultVoltage)
}

func (a *AutomaticRemote) TurnOff() error {
	return a.turnOff(DefaultVoltage)
}
