package net

import (
	"fmt"
	"log"
	"net"
)

// GetOutgoingIP finds the preferred local IP address to put in share links.
func GetOutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// Offline networks still have a LAN address.
		return firstIPv4().String()
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// ShareURL is the address viewers open to see the board.
func ShareURL(port int) string {
	return fmt.Sprintf("http://%s:%d/frame.png", GetOutgoingIP(), port)
}

func firstIPv4() net.IP {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	log.Println("[SHARE] No suitable local IP found, falling back to loopback")
	return net.IPv4(127, 0, 0, 1)
}
