package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular column capacity analysis",
	Long: `Generate and work with the nominal P-M interaction diagram of a
rectangular reinforced concrete column.

The column is defined by its materials, dimensions and a rectangular
bar grid: nx bars along each of the top and bottom faces and ny bar
rows along the depth (one bar per side face in intermediate rows).

The section can be given through flags or through a JSON file.

Subcommands:
  diagram  - Compute and render the nominal interaction diagram
  check    - Verify a factored (Pu, Mu) pair against the envelope

Example JSON file structure:
{
  "name": "C-1 Ground Floor",
  "fc": 280,
  "fy": 4200,
  "b": 30,
  "h": 50,
  "cover": 4,
  "bar_area": 2.85,
  "nx": 3,
  "ny": 3
}

Units: kgf/cm² for strengths, cm for dimensions and bar areas.`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}

// Section input shared by the column subcommands
var (
	columnFile    string
	columnFc      float64
	columnFy      float64
	columnWidth   float64
	columnDepth   float64
	columnCover   float64
	columnBarArea float64
	columnNx      int
	columnNy      int
)

func addColumnSectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&columnFile, "file", "f", "", "Path to column JSON file (overrides section flags)")
	cmd.Flags().Float64Var(&columnFc, "fc", 0, "Concrete compressive strength f'c (kgf/cm²)")
	cmd.Flags().Float64Var(&columnFy, "fy", 0, "Steel yield strength fy (kgf/cm²)")
	cmd.Flags().Float64VarP(&columnWidth, "width", "b", 0, "Section width b (cm)")
	cmd.Flags().Float64VarP(&columnDepth, "depth", "H", 0, "Section total depth h (cm)")
	cmd.Flags().Float64Var(&columnCover, "cover", 0, "Cover to bar centroid (cm)")
	cmd.Flags().Float64Var(&columnBarArea, "bar-area", 0, "Single bar area (cm²)")
	cmd.Flags().IntVar(&columnNx, "nx", 0, "Bar count along top and bottom faces")
	cmd.Flags().IntVar(&columnNy, "ny", 0, "Bar row count along the depth")
}

func loadColumnSection() (*column.Section, error) {
	if columnFile != "" {
		return column.LoadFromFile(columnFile)
	}

	sec := &column.Section{
		Fc:      columnFc,
		Fy:      columnFy,
		B:       columnWidth,
		H:       columnDepth,
		Cover:   columnCover,
		BarArea: columnBarArea,
		Nx:      columnNx,
		Ny:      columnNy,
	}
	if err := sec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid section: %w", err)
	}
	return sec, nil
}
