// Package main provides the entry point for vrhud.
//
// vrhud is a terminal host for a head-up overlay: an animated tabbed settings
// menu and a stack of auto-expiring notifications, both driven from a single
// frame clock.
//
// Usage:
//
//	vrhud [command] [--config DIR]
package main

func main() {
	Execute()
}
