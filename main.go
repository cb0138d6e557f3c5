package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oskoss/casa-bridge/config"
	"github.com/oskoss/casa-bridge/home"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFile string
	delay      time.Duration
	logLevel   string
	noWait     bool
)

func main() {
	os.Exit(execute(rootCmd()))
}

//execute runs the command and turns its outcome into an exit code. Errors
// from flag parsing and pre-run are logged here too.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		log.WithFields(log.Fields{
			"err": err,
		}).Error("casa-bridge failed")
		return 1
	}
	return 0
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "casa-bridge",
		Short:         "Drive household appliances through automatic and manual remotes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	root.Flags().StringVar(&configFile, "config", "", "YAML file describing the home (default built-in)")
	root.Flags().DurationVar(&delay, "delay", -1, "pause between turning on and off (default from config)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&noWait, "no-wait", false, "exit without waiting for a key press")
	return root
}

func run(cmd *cobra.Command) error {
	casaConfig := config.Default()
	if configFile != "" {
		var err error
		yamlConfig := config.YamlConfig{FileLocation: configFile}
		casaConfig, err = yamlConfig.GetAllFields()
		if err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	out := cmd.OutOrStdout()
	myHome, err := home.New(casaConfig, out)
	if err != nil {
		return err
	}
	if delay >= 0 {
		myHome.Delay = delay
	}
	if err := myHome.Demo(); err != nil {
		return err
	}

	if noWait {
		return nil
	}
	if _, err := fmt.Fprint(out, "Press any key to exist..."); err != nil {
		return err
	}
	return waitForKey(cmd.InOrStdin())
}

//waitForKey returns after a single key press. A terminal is switched to raw
// mode so the key does not need Enter; any other reader gives up one byte,
// and EOF also ends the wait.
func waitForKey(in io.Reader) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("raw terminal: %w", err)
		}
		defer term.Restore(int(f.Fd()), state)
	}
	_, err := io.ReadFull(in, make([]byte, 1))
	if err == io.EOF {
		return nil
	}
	return err
}
