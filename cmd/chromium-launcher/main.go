// Command chromium-launcher starts Chromium with the flags listed in
// /etc/chromium-flags.conf and $XDG_CONFIG_HOME/chromium-flags.conf, followed by
// its own arguments, and with the Baikal-M default environment.
package main

import (
	"os"

	"github.com/baikal-linux/chromium-launcher/commands"
)

func main() {
	if err := commands.Launch(os.Args[0], os.Args[1:]); err != nil {
		commands.ReportFatal(err)
		os.Exit(1)
	}
}
