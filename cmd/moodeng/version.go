// Version command for the moodeng CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodeng-app/moodeng"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("moodeng", moodeng.Version)
	},
}
