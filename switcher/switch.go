package switcher

import (
	"errors"

	"github.com/oskoss/casa-bridge/appliance"
	log "github.com/sirupsen/logrus"
)

//ErrNoAppliance is returned when a switch is used before an appliance
// has been bound to it
var ErrNoAppliance = errors.New("no appliance bound to switch")

//Switch is the abstraction side of the bridge. It turns whatever
// appliance is currently bound on and off, supplying the voltage.
type Switch interface {
	Bind(device appliance.Appliance)
	Appliance() appliance.Appliance
	TurnOn() (err error)
	TurnOff() (err error)
}

//remote holds the non-owning appliance reference shared by every switch.
type remote struct {
	kind   string
	device appliance.Appliance
}

func (r *remote) Bind(device appliance.Appliance) {
	fields := log.Fields{"switch": r.kind}
	if device != nil {
		fields["appliance"] = device.Name()
	}
	log.WithFields(fields).Debugf("binding appliance")
	r.device = device
}

func (r *remote) Appliance() appliance.Appliance {
	return r.device
}

func (r *remote) turnOn(voltage string) error {
	if r.device == nil {
		log.WithFields(log.Fields{
			"switch": r.kind,
		}).Warn("turn on requested with no appliance bound")
		return ErrNoAppliance
	}
	log.WithFields(log.Fields{
		"switch":    r.kind,
		"appliance": r.device.Name(),
		"voltage":   voltage,
	}).Debugf("turning on")
	return r.device.Start(voltage)
}

func (r *remote) turnOff(voltage string) error {
	if r.device == nil {
		log.WithFields(log.Fields{
			"switch": r.kind,
		}).Warn("turn off requested with no appliance bound")
		return ErrNoAppliance
	}
	log.WithFields(log.Fields{
		"switch":    r.kind,
		"appliance": r.device.Name(),
		"voltage":   voltage,
	}).Debugf("turning off")
	return r.device.Stop(voltage)
}
