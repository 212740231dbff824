package main

import (
	"flag"
	"log"
	"os"

	"github.com/pshvedko/keyscroll/config"
	"github.com/pshvedko/keyscroll/piano"
	"github.com/pshvedko/keyscroll/sound"
	"github.com/pshvedko/keyscroll/sound/device"
	"github.com/pshvedko/keyscroll/window"
)

func main() {
	var v bool
	var file, dump, backend string
	flag.BoolVar(&v, "verbose", false, "log scroll transitions and keys")
	flag.StringVar(&file, "config", "", "YAML configuration file")
	flag.StringVar(&dump, "dump-config", "", "write the effective configuration to a YAML file and exit")
	flag.StringVar(&backend, "audio", "", "audio backend: oto, ebiten or none")
	flag.Parse()
	c := config.Default()
	if file != "" {
		var err error
		c, err = config.Load(file)
		if err != nil {
			log.Fatal(err)
		}
	}
	if backend != "" {
		c.Audio.Backend = backend
	}
	err := c.Validate()
	if err != nil {
		log.Fatal(err)
	}
	if dump != "" {
		err = config.Save(c, dump)
		if err != nil {
			log.Fatal(err)
		}
		return
	}
	f, err := device.Open(c.Audio.Backend, c.Audio.SampleRate)
	if err != nil {
		log.Fatal(err)
	}
	e := sound.NewEngine(f, sound.WithLogger(log.New(os.Stderr, "sound: ", log.LstdFlags)))
	var l *log.Logger
	if v {
		l = log.New(os.Stderr, "piano: ", log.LstdFlags)
	}
	p, err := piano.New(c, e, l)
	if err != nil {
		log.Fatal(err)
	}
	err = window.New(p).Run("Piano")
	if err != nil {
		log.Fatal(err)
	}
}
