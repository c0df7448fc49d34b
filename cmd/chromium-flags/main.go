// Command chromium-flags inspects the launch that chromium-launcher would perform.
package main

import (
	"os"

	"github.com/baikal-linux/chromium-launcher/commands"
)

func main() {
	if err := commands.NewFlagsCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
