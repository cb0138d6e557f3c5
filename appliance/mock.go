package appliance

//Call is a single Start or Stop received by a MockAppliance
type Call struct {
	Action  string
	Voltage string
}

type MockAppliance struct {
	ApplianceName string
	Calls         []Call
	Err           error
}

func (device *MockAppliance) Name() string {
	return device.ApplianceName
}

func (device *MockAppliance) Start(voltage string) error {
	device.Calls = append(device.Calls, Call{Action: ActionStarted, Voltage: voltage})
	return device.Err
}

func (device *MockAppliance) Stop(voltage string) error {
	device.Calls = append(device.Calls, Call{Action: ActionStopped, Voltage: voltage})
	return device.Err
}
