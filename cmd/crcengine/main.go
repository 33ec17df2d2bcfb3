package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/GardenTools/CrcEngine/cmd/crcengine/config"
	"github.com/GardenTools/CrcEngine/pkg/crc"
)

const usage = `usage: crcengine [-config file] [-log-level level] <command> [flags]

commands:
  calculate  checksum a string, files, stdin or a serial port
  check      verify the check value of every variant
  list       print the known variants
  generate   write C sources for a variant
  serve      start the HTTP API
`

var errUsage = errors.New("invalid usage")

// app carries what every command needs.
type app struct {
	cfg      *config.Config
	registry *crc.Registry
	stdin    io.Reader
	stdout   io.Writer
}

type command func(a *app, args []string) error

var commands = map[string]command{
	"calculate": calculate,
	"check":     check,
	"list":      list,
	"generate":  generate,
	"serve":     serve,
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("crcengine", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := fs.String("config", "", "YAML configuration file")
	logLevel := fs.String("log-level", "", "log level (overrides the configuration)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %v", err)
		}
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	registry, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("invalid variant in %s: %w", *configFile, err)
	}
	log.Debugf("%d variants registered", registry.Len())

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	return cmd(&app{cfg: cfg, registry: registry, stdin: stdin, stdout: stdout}, fs.Args()[1:])
}
