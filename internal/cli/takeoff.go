package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CabFace/internal/export"
	"github.com/piwi3910/CabFace/internal/model"
	"github.com/piwi3910/CabFace/internal/takeoff"
)

// takeoffCommand computes the takeoff of one cabinet.
func (c *CLI) takeoffCommand() *cobra.Command {
	var (
		xlsxPath string
		dxfPath  string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "takeoff [cabinet.json]",
		Short: "Compute parts, hardware and metrics for a cabinet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			ed, err := c.openCabinet(e, args[0])
			if err != nil {
				return err
			}
			cab := ed.Cabinet()
			p, err := takeoff.NewParams(cab, e.catalog, e.settings())
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			res := takeoff.Calculate(ed.Root(), p)
			prog.done(fmt.Sprintf("Takeoff for %s", cab.Label))

			if asJSON {
				if err := c.writeJSON(res); err != nil {
					return err
				}
			} else {
				c.printTakeoff(cab, res)
			}

			if xlsxPath != "" {
				if err := export.WriteTakeoffXLSX(xlsxPath, cab, res); err != nil {
					return err
				}
				c.printFile(xlsxPath)
			}
			if dxfPath != "" {
				if err := export.WriteFaceDXF(dxfPath, cab, ed.Layout()); err != nil {
					return err
				}
				c.printFile(dxfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the takeoff to an Excel workbook")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "also write the laid-out face to a DXF drawing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the takeoff as JSON")
	return cmd
}

func (c *CLI) printTakeoff(cab model.Cabinet, res takeoff.Result) {
	c.printTitle(cab.Label + " faces")
	rows := make([][]string, 0, len(res.FaceSummary))
	for _, f := range res.FaceSummary {
		rows = append(rows, []string{f.NodeID, f.Type.String(), inches(f.Width), inches(f.Height), strconv.Itoa(f.Quantity)})
	}
	c.printTable([]string{"Node", "Type", "Width", "Height", "Qty"}, rows)

	if len(res.BoxSummary.Parts) > 0 {
		c.printTitle(cab.Label + " box")
		rows = rows[:0]
		for _, p := range res.BoxSummary.Parts {
			rows = append(rows, []string{p.Label, inches(p.Width), inches(p.Height), strconv.Itoa(p.Quantity), p.EdgeBanding.String()})
		}
		c.printTable([]string{"Part", "Width", "Height", "Qty", "Banding"}, rows)
		c.printKeyValue("Sheets", strconv.Itoa(res.BoxSummary.Sheets.SheetsWithWaste))
		if over := res.BoxSummary.Sheets.Oversized; len(over) > 0 {
			c.printWarning("Larger than a sheet along the grain: %s", strings.Join(over, ", "))
		}
		c.printKeyValue("Banding (ft)", inches(res.BoxSummary.EdgeBanding.TotalWithWasteFt))
	}

	if len(res.FrameParts) > 0 {
		c.printTitle(cab.Label + " face frame")
		rows = rows[:0]
		for _, f := range res.FrameParts {
			rows = append(rows, []string{f.NodeID, string(f.Kind), f.Position, inches(f.Width), inches(f.Length)})
		}
		c.printTable([]string{"Node", "Member", "Position", "Width", "Length"}, rows)
	}

	hw := res.BoxHardware
	c.printKeyValue("Hinges", strconv.Itoa(hw.Hinges))
	c.printKeyValue("Slides", strconv.Itoa(hw.Slides))
	c.printKeyValue("Pulls", strconv.Itoa(hw.Pulls+hw.AppliancePulls))
	c.printKeyValue("Shelves", strconv.Itoa(res.ShelfMetrics.Count))
	c.printKeyValue("Partitions", strconv.Itoa(res.PartitionMetrics.Count))
}
