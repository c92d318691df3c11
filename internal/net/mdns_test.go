package net

import (
	stdnet "net"
	"testing"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointFromServiceEntry(t *testing.T) {
	ep, ok := endpointFromEntry(&mdns.ServiceEntry{
		Name:       "laptop._mathboard._tcp.local.",
		AddrV4:     stdnet.IPv4(192, 168, 1, 20),
		Port:       8090,
		InfoFields: []string{"MathBoard", "path=/ws", "id=algebra-3"},
	})
	require.True(t, ok)
	assert.Equal(t, "laptop", ep.Name)
	assert.Equal(t, "192.168.1.20:8090", ep.Addr)
	assert.Equal(t, "algebra-3", ep.ID)
	assert.Equal(t, "http://192.168.1.20:8090/frame.png", ep.URL())

	_, ok = endpointFromEntry(nil)
	assert.False(t, ok)
	_, ok = endpointFromEntry(&mdns.ServiceEntry{AddrV4: stdnet.IPv4(10, 0, 0, 1)})
	assert.False(t, ok, "missing port")
}
