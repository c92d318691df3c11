package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"MathBoard/internal/config"
	boardnet "MathBoard/internal/net"
	"MathBoard/internal/ui"
)

const discoverTimeout = 3 * time.Second

func main() {
	cfg := config.Load()
	if err := cfg.ParseFlags(os.Args[0], os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if cfg.Discover {
		runDiscover()
		return
	}

	log.Println("[BOARD] Starting MathBoard")
	ui.RunApp(cfg)
}

// runDiscover prints every shared board answering on the local network.
func runDiscover() {
	log.Println("[MDNS] Looking for shared boards...")
	found := 0
	err := boardnet.Browse(discoverTimeout, func(ep boardnet.Endpoint) {
		found++
		id := ep.ID
		if id == "" {
			id = "-"
		}
		fmt.Printf("%s\t%s\t%s\n", ep.Name, id, ep.URL())
	})
	if err != nil {
		log.Fatalf("[MDNS] Discovery failed: %v", err)
	}
	if found == 0 {
		fmt.Println("No shared boards found")
	}
}
