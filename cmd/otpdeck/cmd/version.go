package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/otpdeck/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about otpdeck.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		s := currentStyles()
		fmt.Println(s.TopBar.Render("OTPDECK"))
		fmt.Printf("Version:    %s\n", info.Version)
		fmt.Printf("Commit:     %s\n", info.Commit)
		fmt.Printf("Build Date: %s\n", info.BuildDate)
		fmt.Printf("Go Version: %s\n", info.GoVersion)
		fmt.Printf("OS/Arch:    %s\n", info.Platform)
	},
}
