package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/spf13/cobra"
)

var (
	// Unfactored load effects (t, t-m)
	loadsDeadP, loadsDeadM             float64
	loadsLiveP, loadsLiveM             float64
	loadsRoofP, loadsRoofM             float64
	loadsWindP, loadsWindM             float64
	loadsEarthquakeP, loadsEarthquakeM float64
	loadsRainP, loadsRainM             float64

	// Options
	loadsShowAll    bool
	loadsSimplified bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate factored (Pu, Mu) using ACI 318 load combinations",
	Long: `Calculate the factored axial force and moment pair (Pu, Mu) based
on the ACI 318-14 load combinations.

Provide unfactored axial forces and moments from different load types
and this command computes the factored pair for every applicable
combination and reports the governing one. The governing pair is what
gets checked against the column interaction diagram.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads (dead + live)
  gorcc loads --dead-p 80 --dead-m 6 --live-p 45 --live-m 4

  # Show all combinations
  gorcc loads --dead-p 80 --dead-m 6 --live-p 45 --live-m 4 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64Var(&loadsDeadP, "dead-p", 0, "Axial force due to dead load (t)")
	loadsCmd.Flags().Float64Var(&loadsDeadM, "dead-m", 0, "Moment due to dead load (t-m)")
	loadsCmd.Flags().Float64Var(&loadsLiveP, "live-p", 0, "Axial force due to live load (t)")
	loadsCmd.Flags().Float64Var(&loadsLiveM, "live-m", 0, "Moment due to live load (t-m)")
	loadsCmd.Flags().Float64Var(&loadsRoofP, "roof-p", 0, "Axial force due to roof live load (t)")
	loadsCmd.Flags().Float64Var(&loadsRoofM, "roof-m", 0, "Moment due to roof live load (t-m)")
	loadsCmd.Flags().Float64Var(&loadsWindP, "wind-p", 0, "Axial force due to wind load (t)")
	loadsCmd.Flags().Float64Var(&loadsWindM, "wind-m", 0, "Moment due to wind load (t-m)")
	loadsCmd.Flags().Float64Var(&loadsEarthquakeP, "earthquake-p", 0, "Axial force due to earthquake load (t)")
	loadsCmd.Flags().Float64Var(&loadsEarthquakeM, "earthquake-m", 0, "Moment due to earthquake load (t-m)")
	loadsCmd.Flags().Float64Var(&loadsRainP, "rain-p", 0, "Axial force due to rain load (t)")
	loadsCmd.Flags().Float64Var(&loadsRainM, "rain-m", 0, "Moment due to rain load (t-m)")

	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadsSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) {
	effects := aci.LoadEffects{
		Dead:       aci.LoadEffect{P: loadsDeadP, M: loadsDeadM},
		Live:       aci.LoadEffect{P: loadsLiveP, M: loadsLiveM},
		Roof:       aci.LoadEffect{P: loadsRoofP, M: loadsRoofM},
		Wind:       aci.LoadEffect{P: loadsWindP, M: loadsWindM},
		Earthquake: aci.LoadEffect{P: loadsEarthquakeP, M: loadsEarthquakeM},
		Rain:       aci.LoadEffect{P: loadsRainP, M: loadsRainM},
	}

	if effects.IsZero() {
		fmt.Println("Error: Please provide at least one unfactored load effect.")
		fmt.Println("Use 'gorcc loads --help' for usage information.")
		return
	}

	combinations := aci.LoadCombinations
	if loadsSimplified {
		combinations = aci.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACI 318-14 FACTORED LOAD PAIR CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOAD EFFECTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load\tP (t)\tM (t-m)\n")
	fmt.Fprintf(w, "  ────\t─────\t───────\n")
	printEffect(w, "Dead (D)", effects.Dead)
	printEffect(w, "Live (L)", effects.Live)
	printEffect(w, "Roof Live (Lr)", effects.Roof)
	printEffect(w, "Wind (W)", effects.Wind)
	printEffect(w, "Earthquake (E)", effects.Earthquake)
	printEffect(w, "Rain (R)", effects.Rain)
	w.Flush()
	fmt.Println()

	pu, mu, governing := aci.Governing(effects, combinations)

	if loadsShowAll {
		fmt.Println("LOAD COMBINATIONS (ACI 318-14 Table 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tPu (t)\tMu (t-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────\t────────\n")

		for _, combo := range combinations {
			p, m := combo.Factored(effects)
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", combo.ID, combo.Description, p, m, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  Pu = %.2f t,  Mu = %.2f t-m  \n", pu, mu)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()
}

func printEffect(w *tabwriter.Writer, label string, e aci.LoadEffect) {
	if e.P == 0 && e.M == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", label, e.P, e.M)
}
