package appliance

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

//Appliance is the implementation side of a switch. It performs the
// actual start and stop and has no idea which switch is driving it.
type Appliance interface {
	Name() string
	Start(voltage string) error
	Stop(voltage string) error
}

//ErrNilDevice is returned when a nil *Device is asked to start or stop
var ErrNilDevice = errors.New("nil appliance device")

const (
	ActionStarted = "started"
	ActionStopped = "stoped"
)

//TimeLayout is the date and time part of the console line. Milliseconds
// are appended separately as ":fff".
const TimeLayout = "2006-01-02 15:04:05"

//Device implements the Appliance interface. All kinds behave the same,
// only the name and kind tag differ.
type Device struct {
	DisplayName string
	Kind        Kind
	Out         io.Writer
	Clock       func() time.Time
}

func (d *Device) Name() string {
	if d == nil {
		return ""
	}
	return d.DisplayName
}

func (d *Device) Start(voltage string) error {
	return d.report(ActionStarted, voltage)
}

func (d *Device) Stop(voltage string) error {
	return d.report(ActionStopped, voltage)
}

func (d *Device) report(action, voltage string) error {
	if d == nil {
		log.WithFields(log.Fields{
			"action":  action,
			"voltage": voltage,
		}).Warn("nil appliance device called")
		return ErrNilDevice
	}
	now := time.Now()
	if d.Clock != nil {
		now = d.Clock()
	}
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	log.WithFields(log.Fields{
		"appliance": d.DisplayName,
		"kind":      d.Kind,
		"action":    action,
		"voltage":   voltage,
	}).Debugf("appliance called")
	_, err := fmt.Fprintln(out, Line(d.DisplayName, action, now, voltage))
	if err != nil {
		log.WithFields(log.Fields{
			"err":       err,
			"appliance": d.DisplayName,
		}).Error("could not write appliance status")
		return fmt.Errorf("%s: write status: %w", d.DisplayName, err)
	}
	return nil
}

//Line formats a single status line, e.g.
// "Usha Fan is started. Time: 2020-01-02 15:04:05:123, Voltage: 220 V"
func Line(name, action string, at time.Time, voltage string) string {
	return fmt.Sprintf("%s is %s. Time: %s, Voltage: %s", name, action, FormatTime(at), voltage)
}

func FormatTime(t time.Time) string {
	return fmt.Sprintf("%s:%03d", t.Format(TimeLayout), t.Nanosecond()/int(time.Millisecond))
}
