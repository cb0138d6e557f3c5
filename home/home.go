package home

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/oskoss/casa-bridge/appliance"
	"github.com/oskoss/casa-bridge/config"
	"github.com/oskoss/casa-bridge/switcher"
	log "github.com/sirupsen/logrus"
)

const (
	AutomaticBanner = "---------------------------Automated Remote Controller---------------------------"
	ManualBanner    = "---------------------------Manual Remote Controller------------------------------"
)

//Rule closes each section, same width as the banners
var Rule = strings.Repeat("-", len(AutomaticBanner))

type Home struct {
	Appliances     []appliance.Appliance
	Automatic      *switcher.AutomaticRemote
	Manual         *switcher.ManualRemote
	AutomaticCycle string
	ManualCycle    []string
	Delay          time.Duration
	Out            io.Writer
	Sleep          func(time.Duration)
}

//New builds the appliances and both remotes described by conf. The
// remotes start unbound; Demo binds them as it goes.
func New(conf *config.CasaConfig, out io.Writer) (*Home, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	myHome := &Home{
		Automatic:      switcher.NewAutomaticRemote(nil),
		Manual:         switcher.NewManualRemote(nil, conf.Manual.Voltage),
		AutomaticCycle: conf.Automatic.Appliance,
		ManualCycle:    conf.Manual.Appliances,
		Delay:          time.Duration(conf.DelayMilliseconds) * time.Millisecond,
		Out:            out,
		Sleep:          time.Sleep,
	}
	for _, applianceConf := range conf.Appliances {
		device, err := appliance.New(applianceConf.Kind, applianceConf.Name, out)
		if err != nil {
			return nil, err
		}
		myHome.Appliances = append(myHome.Appliances, device)
	}
	log.WithFields(log.Fields{
		"name":       conf.Name,
		"appliances": len(myHome.Appliances),
		"delay":      myHome.Delay,
	}).Printf("new home set up")
	return myHome, nil
}

func (myHome *Home) Lookup(name string) (appliance.Appliance, error) {
	for _, device := range myHome.Appliances {
		if device.Name() == name {
			return device, nil
		}
	}
	return nil, fmt.Errorf("appliance %q not found in home", name)
}

//Demo drives the automatic remote over its appliance, then the manual
// remote over each of its appliances in order.
func (myHome *Home) Demo() error {
	if myHome.AutomaticCycle != "" {
		if err := myHome.println(AutomaticBanner); err != nil {
			return err
		}
		if err := myHome.cycle(myHome.Automatic, myHome.AutomaticCycle); err != nil {
			return err
		}
		if err := myHome.println(Rule); err != nil {
			return err
		}
	}
	if len(myHome.ManualCycle) > 0 {
		if err := myHome.println(ManualBanner); err != nil {
			return err
		}
		for _, name := range myHome.ManualCycle {
			if err := myHome.cycle(myHome.Manual, name); err != nil {
				return err
			}
		}
		if err := myHome.println(Rule); err != nil {
			return err
		}
	}
	return nil
}

//cycle binds the named appliance and turns it on, pauses, then off.
func (myHome *Home) cycle(remote switcher.Switch, name string) error {
	device, err := myHome.Lookup(name)
	if err != nil {
		return err
	}
	remote.Bind(device)
	if err := remote.TurnOn(); err != nil {
		return fmt.Errorf("turn on %s: %w", name, err)
	}
	myHome.pause()
	if err := remote.TurnOff(); err != nil {
		return fmt.Errorf("turn off %s: %w", name, err)
	}
	return nil
}

func (myHome *Home) pause() {
	if myHome.Delay <= 0 || myHome.Sleep == nil {
		return
	}
	myHome.Sleep(myHome.Delay)
}

func (myHome *Home) println(line string) error {
	if _, err := fmt.Fprintln(myHome.Out, line); err != nil {
		log.WithFields(log.Fields{
			"err": err,
		}).Error("could not write banner")
		return fmt.Errorf("write banner: %w", err)
	}
	return nil
}
