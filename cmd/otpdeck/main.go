// otpdeck is a terminal authenticator; this binary hosts its appearance settings
package main

import (
	"os"

	"github.com/iiroan/otpdeck/cmd/otpdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
