package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	columnDiagramShowChart  bool
	columnDiagramExportFile string
)

var columnDiagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Compute the nominal P-M interaction diagram",
	Long: `Compute the nominal axial-force/bending-moment interaction diagram
of a rectangular column.

The sweep starts at pure compression (Po), steps through a fixed ladder
of neutral-axis depths from c = 2.0h down to c = 0.05h, and ends at
pure tension (Pt). Capacities are nominal (no strength reduction).

Examples:
  gorcc column diagram --fc 280 --fy 4200 -b 30 -H 50 --cover 4 --bar-area 2.85 --nx 3 --ny 3
  gorcc column diagram -f column.json --chart
  gorcc column diagram -f column.json -o diagram.png
  gorcc column diagram -f column.json -o diagram.html`,
	Run: runColumnDiagram,
}

func init() {
	columnCmd.AddCommand(columnDiagramCmd)

	addColumnSectionFlags(columnDiagramCmd)
	columnDiagramCmd.Flags().BoolVar(&columnDiagramShowChart, "chart", false, "Show ASCII section sketch and interaction charts")
	columnDiagramCmd.Flags().StringVarP(&columnDiagramExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf, html)")
}

func runColumnDiagram(cmd *cobra.Command, args []string) {
	sec, err := loadColumnSection()
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	model, err := sec.BuildModel()
	if err != nil {
		fmt.Printf("Error building section model: %v\n", err)
		return
	}

	result, err := sec.ComputeDiagram()
	if err != nil {
		fmt.Printf("Error computing diagram: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN INTERACTION DIAGRAM - NOMINAL CAPACITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Column: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  f'c:\t%.1f kgf/cm²\n", sec.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f kgf/cm²\n", sec.Fy)
	fmt.Fprintf(w, "  β₁:\t%.4f\n", model.Beta1)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (b):\t%.1f cm\n", sec.B)
	fmt.Fprintf(w, "  Depth (h):\t%.1f cm\n", sec.H)
	fmt.Fprintf(w, "  Cover:\t%.1f cm\n", sec.Cover)
	fmt.Fprintf(w, "  Gross Area (Ag):\t%.1f cm²\n", model.Ag)
	fmt.Fprintf(w, "  Steel Area (Ast):\t%.2f cm²\n", model.Ast)
	fmt.Fprintf(w, "  Steel Ratio:\t%.4f\n", model.Ast/model.Ag)
	w.Flush()
	fmt.Println()

	fmt.Println("REINFORCEMENT LAYERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tDepth (cm)\tArea (cm²)\n")
	fmt.Fprintf(w, "  ─────\t──────────\t──────────\n")
	for i, layer := range model.Layers {
		fmt.Fprintf(w, "  %d\t%.2f\t%.2f\n", i+1, layer.DepthFromTop, layer.Area)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("CAPACITY POINTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tState\tMn (t-m)\tPn (t)\n")
	fmt.Fprintf(w, "  ─\t─────\t────────\t──────\n")
	for i, pt := range result.Points {
		state := stateLabel(i, len(result.Points))
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%.2f\n", i+1, state, pt.M, pt.P)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("NOMINAL CAPACITY SUMMARY", []string{
		fmt.Sprintf("Po (pure compression) = %.2f t", result.Po),
		fmt.Sprintf("Pt (pure tension)     = %.2f t", result.Points[len(result.Points)-1].P),
		fmt.Sprintf("Mo (max swept moment) ≈ %.2f t-m", result.MoApprox),
	}))
	fmt.Println()

	data := interactionData(sec, result)

	if columnDiagramShowChart {
		fmt.Println(diagram.DrawColumnSection(data))
		fmt.Println(diagram.DrawInteractionChart(data))
	}

	if columnDiagramExportFile != "" {
		if filepath.Ext(columnDiagramExportFile) == ".html" {
			err = diagram.ExportInteractionHTML(data, columnDiagramExportFile)
		} else {
			err = diagram.ExportInteractionDiagram(data, columnDiagramExportFile)
		}
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", columnDiagramExportFile)
		}
	}
}

func stateLabel(i, total int) string {
	switch i {
	case 0:
		return "Pure compression"
	case total - 1:
		return "Pure tension"
	default:
		return fmt.Sprintf("c/h = %.2f", column.NeutralAxisRatios[i-1])
	}
}

func interactionData(sec *column.Section, d *column.Diagram) diagram.InteractionData {
	data := diagram.InteractionData{
		Name:     sec.Name,
		Width:    sec.B,
		Height:   sec.H,
		Cover:    sec.Cover,
		Nx:       sec.Nx,
		Ny:       sec.Ny,
		Po:       d.Po,
		MoApprox: d.MoApprox,
	}
	for _, pt := range d.Points {
		data.Moments = append(data.Moments, pt.M)
		data.Forces = append(data.Forces, pt.P)
	}
	return data
}
