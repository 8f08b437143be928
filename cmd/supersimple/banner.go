package main

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/skip2/go-qrcode"
)

// settingsURL is the address a phone should open to reach the settings
// server.
func settingsURL(public, listenAddr string) string {
	if public != "" {
		return public
	}
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "http://" + listenAddr + "/settings"
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		if name, err := os.Hostname(); err == nil {
			host = name
		} else {
			host = "localhost"
		}
	}
	return "http://" + net.JoinHostPort(host, port) + "/settings"
}

// printBanner writes the settings URL and a scannable QR code.
func printBanner(w io.Writer, url string) {
	fmt.Fprintf(w, "Settings: %s\n", url)

	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return
	}
	fmt.Fprintln(w, qr.ToSmallString(false))
}
