package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcc",
	Short: "Reinforced Concrete Column Capacity Tool",
	Long: `gorcc - Go Reinforced Concrete Column Calculator

A CLI tool for the capacity analysis of rectangular reinforced
concrete columns.

This tool helps structural engineers perform:
  - Nominal P-M interaction diagram generation
  - Verification of factored (Pu, Mu) load pairs against the envelope
  - Factored load calculation using ACI 318 load combinations
  - Diagram export to PNG, SVG, PDF and interactive HTML

Calculations use strain compatibility with an equivalent rectangular
stress block in MKS units (kgf/cm², cm; results in t and t-m).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Column Calculator                ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the capacity analysis of rectangular")
		fmt.Println("  reinforced concrete columns.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Nominal P-M interaction diagram from a bar-grid layout")
		fmt.Println("    • Factored load pair verification against the envelope")
		fmt.Println("    • ACI 318 load combination calculator")
		fmt.Println("    • ASCII, image and HTML diagram rendering")
		fmt.Println()
		fmt.Println("  Use 'gorcc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
