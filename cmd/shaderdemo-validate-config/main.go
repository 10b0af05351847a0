package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fosdem/shaderdemo/lib/config"
	"github.com/fosdem/shaderdemo/lib/rendering"
	"github.com/fosdem/shaderdemo/lib/rendering/shaders"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>...", os.Args[0])
	}

	failed := false
	for _, filename := range os.Args[1:] {
		err := validate(filename)
		if err != nil {
			fmt.Printf("%s: invalid: %s\n", filename, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func validate(filename string) error {
	cfg, err := config.Parse(filename)
	if err != nil {
		return err
	}

	// templates must render for either context kind
	for _, kind := range []rendering.ContextKind{rendering.ContextStandard, rendering.ContextLegacy} {
		shaderer, err := shaders.NewShaderer(cfg.Shaders, kind)
		if err != nil {
			return fmt.Errorf("%s shaders: %w", kind, err)
		}
		for _, role := range []rendering.Role{rendering.VertexRole, rendering.FragmentRole} {
			_, err := shaderer.Source(role)
			if err != nil {
				return fmt.Errorf("%s %s shader: %w", kind, role, err)
			}
		}
	}

	fmt.Printf("%s: valid\n\n%s\n", filename, cfg)
	return nil
}
