package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcc v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Column Capacity Tool")
		fmt.Println("Strain compatibility analysis per ACI 318 (MKS units)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
