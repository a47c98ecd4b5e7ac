// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hmmlab runs discrete HMM inference from the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	osuser "os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/akualab/hmmlab"
	"github.com/golang/glog"
	"github.com/urfave/cli"
)

const (
	appName    = "hmmlab"
	appVersion = "0.1"
)

// Properties of hmmlab, read from a TOML file.
type Properties struct {
	LogDir string `toml:"log_dir"`
	Seed   int64  `toml:"seed"`
}

// NoConfigValueError is returned when a parameter is neither in the
// config file nor set with a flag.
var NoConfigValueError = errors.New("no config value")

var (
	props  *Properties
	config *hmmlab.Config
)

func main() {

	var e error
	props, e = readProperties(propertiesPath())
	hmmlab.Fatal(e)

	app := newApp(props)
	err := app.Run(os.Args)
	glog.Flush()
	hmmlab.Fatal(err)
}

func newApp(p *Properties) *cli.App {

	props = p
	defaultLogDir := p.LogDir
	if len(defaultLogDir) == 0 {
		defaultLogDir = filepath.Join(os.TempDir(), appName)
	}

	app := cli.NewApp()
	app.Name = appName
	app.Version = appVersion
	app.Usage = "Discrete hidden Markov model inference: forward probabilities and viterbi decoding."
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config-file, c", Usage: "experiment config file (YAML)"},
		cli.BoolFlag{Name: "log-stderr", Usage: "logs are written to standard error instead of files"},
		cli.StringFlag{Name: "log-level, l", Value: "0", Usage: "enable V-leveled logging at the specified level"},
		cli.StringFlag{Name: "log-dir", Value: defaultLogDir, Usage: "log output dir"},
		cli.Int64Flag{Name: "seed", Value: p.Seed, Usage: "seed for the random number generator, 0 draws a new one every run"},
	}
	app.Commands = []cli.Command{
		forwardCommand,
		viterbiCommand,
		sampleCommand,
		initCommand,
	}
	return app
}

// propertiesPath returns $HOME/.config/hmmlab/properties.toml unless
// HMMLAB_PROPERTIES is set.
func propertiesPath() string {

	if p := os.Getenv("HMMLAB_PROPERTIES"); len(p) > 0 {
		return p
	}
	dir, _ := os.Getwd()
	if u, e := osuser.Current(); e == nil {
		dir = filepath.Join(u.HomeDir, ".config", appName)
	}
	return filepath.Join(dir, "properties.toml")
}

// readProperties reads the TOML file. A missing file yields empty
// properties.
func readProperties(fn string) (*Properties, error) {

	p := new(Properties)
	if _, e := toml.DecodeFile(fn, p); e != nil {
		if errors.Is(e, os.ErrNotExist) {
			glog.V(2).Infof("unable to read properties file [%s]: %v", fn, e)
			return p, nil
		}
		return nil, fmt.Errorf("can't parse properties file [%s]: %w", fn, e)
	}
	return p, nil
}

// initApp sets up logging and reads the config file if there is one. Must
// be called at the beginning of every command action.
func initApp(c *cli.Context) error {

	if e := initGlog(c); e != nil {
		return e
	}
	printAppValues(c)

	config = nil
	fn := c.GlobalString("config-file")
	if len(fn) == 0 {
		return nil
	}
	var e error
	config, e = hmmlab.ReadConfig(fn)
	if e != nil {
		return e
	}
	glog.V(1).Infof("read configuration from [%s]:\n%+v", fn, config)
	return nil
}

func initGlog(c *cli.Context) error {

	logDir := c.GlobalString("log-dir")
	if e := os.MkdirAll(logDir, 0755); e != nil {
		return e
	}
	if c.GlobalBool("log-stderr") {
		flag.Set("logtostderr", "true")
	}
	if e := flag.Set("v", c.GlobalString("log-level")); e != nil {
		return fmt.Errorf("bad log level [%s]: %w", c.GlobalString("log-level"), e)
	}
	return flag.Set("log_dir", logDir)
}

func printAppValues(c *cli.Context) {
	glog.V(1).Info("app properties: ", *props)
	glog.V(1).Info("app version: ", appVersion)
	glog.V(1).Info("app config file: ", c.GlobalString("config-file"))
	glog.V(1).Info("app log to std err: ", c.GlobalBool("log-stderr"))
	glog.V(1).Info("app log level: ", c.GlobalString("log-level"))
	glog.V(1).Info("app log dir: ", c.GlobalString("log-dir"))
}
