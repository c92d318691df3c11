package net

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_mathboard._tcp"

// Endpoint is a shared board found on the local network.
type Endpoint struct {
	Name string
	Addr string
	ID   string
}

// URL is the endpoint's frame address.
func (e Endpoint) URL() string { return "http://" + e.Addr + "/frame.png" }

// Advertise announces the frame hub listening on port. id is the board's
// problem id and may be empty.
func Advertise(port int, id string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"MathBoard", "path=/ws"}
	if id != "" {
		info = append(info, "id="+id)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	log.Printf("[MDNS] Advertising %s on port %d", serviceType, port)
	return server, nil
}

// Browse looks for shared boards for the given duration, calling found for
// each one. It returns once the lookup is over.
func Browse(timeout time.Duration, found func(Endpoint)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		seen := make(map[string]bool)
		for e := range entries {
			ep, ok := endpointFromEntry(e)
			if !ok || seen[ep.Addr] {
				continue
			}
			seen[ep.Addr] = true
			found(ep)
		}
	}()

	err := mdns.Query(&mdns.QueryParam{
		Service:     serviceType,
		Domain:      "local",
		Timeout:     timeout,
		Entries:     entries,
		DisableIPv6: true,
	})
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("mDNS lookup: %w", err)
	}
	return nil
}

func endpointFromEntry(e *mdns.ServiceEntry) (Endpoint, bool) {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return Endpoint{}, false
	}
	ep := Endpoint{
		Name: strings.TrimSuffix(e.Name, "."+serviceType+".local."),
		Addr: fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port),
	}
	for _, field := range e.InfoFields {
		if v, ok := strings.CutPrefix(field, "id="); ok {
			ep.ID = v
		}
	}
	return ep, true
}
