package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in ml's version
	VersionMajor = 0
	// VersionMinor is the minor number in ml's version
	VersionMinor = 1
	// VersionPatch is the patch number in ml's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ml",
		Long:  `All software has versions. This is ml's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ml v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
