package main

import (
	"log"
	"os"
	"runtime"

	"github.com/fosdem/shaderdemo/lib/config"
	"github.com/fosdem/shaderdemo/lib/demo"
	shlog "github.com/fosdem/shaderdemo/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) > 2 {
		log.Fatalf("Usage: %s [config file]", os.Args[0])
	}

	cfg := config.Default()
	if len(os.Args) == 2 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	err := shlog.Setup(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	err = demo.MakeWindowAndRun(cfg)
	if err != nil {
		log.Fatal(err)
	}
}
