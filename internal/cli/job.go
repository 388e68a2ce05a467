package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CabFace/internal/importer"
	"github.com/piwi3910/CabFace/internal/model"
	"github.com/piwi3910/CabFace/internal/project"
	"github.com/piwi3910/CabFace/internal/takeoff"
)

// jobCommand groups the commands that work on a whole estimating job.
func (c *CLI) jobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Import cabinet schedules and manage estimating sections",
	}
	cmd.AddCommand(c.jobImportCommand())
	cmd.AddCommand(c.jobListCommand())
	cmd.AddCommand(c.jobUngroupCommand())
	cmd.AddCommand(c.jobTakeoffCommand())
	return cmd
}

func (c *CLI) jobImportCommand() *cobra.Command {
	var (
		output  string
		name    string
		section string
	)

	cmd := &cobra.Command{
		Use:   "import [schedule.csv|schedule.xlsx]",
		Short: "Create or extend a job from a cabinet schedule",
		Long: `Create or extend a job from a cabinet schedule.

The schedule is a CSV or Excel sheet with label, width, height, depth, style,
type and quantity columns. Only width and height are required; the rest fall
back to the app config defaults. Imported cabinets get their default face and
are grouped into one section. If the output job already exists the cabinets
are appended to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			res := importer.Import(args[0], e.catalog, importer.Defaults{
				Depth:   e.config.DefaultDepth,
				StyleID: e.config.DefaultStyleID,
				TypeID:  e.config.DefaultTypeID,
			})
			for _, w := range res.Warnings {
				c.printWarning("%s", w)
			}
			for _, msg := range res.Errors {
				c.printError("%s", msg)
			}
			if len(res.Cabinets) == 0 {
				return fmt.Errorf("no cabinets imported from %s", args[0])
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".job.json"
			}
			job, err := project.LoadJob(output)
			if errors.Is(err, fs.ErrNotExist) {
				if name == "" {
					name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				}
				job = project.NewJob(name)
			} else if err != nil {
				return err
			}
			if section == "" {
				section = filepath.Base(args[0])
			}

			ids := make([]string, 0, len(res.Cabinets))
			for _, cab := range res.Cabinets {
				ed, err := c.newEditor(e, cab)
				if err != nil {
					c.printError("%s: %v", cab.Label, err)
					continue
				}
				job.Cabinets = append(job.Cabinets, ed.Cabinet())
				ids = append(ids, cab.ID)
			}
			job.Sections.Add(model.NewSection(section, ids...))

			if err := project.SaveJob(output, job); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			prog.done(fmt.Sprintf("Imported %d cabinets", len(ids)))
			c.printSuccess("Imported %d cabinets into %q", len(ids), section)
			c.printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "job file (default: <schedule>.job.json)")
	cmd.Flags().StringVar(&name, "name", "", "job name for a new job (default: schedule file name)")
	cmd.Flags().StringVar(&section, "section", "", "section for the imported cabinets (default: schedule file name)")
	return cmd
}

func (c *CLI) jobListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [job.json]",
		Short: "List the sections and cabinets of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := project.LoadJob(args[0])
			if err != nil {
				return err
			}
			c.printTitle(job.Name)
			var rows [][]string
			for _, s := range job.Sections.Sections {
				for _, id := range s.Members {
					label, size := "?", ""
					if cab := job.Cabinet(id); cab != nil {
						label = cab.Label
						size = fmt.Sprintf("%sx%sx%s", inches(cab.Width), inches(cab.Height), inches(cab.Depth))
					}
					rows = append(rows, []string{s.ID, s.Name, id, label, size})
				}
			}
			c.printTable([]string{"Section", "Name", "Cabinet", "Label", "Size"}, rows)
			return nil
		},
	}
}

func (c *CLI) jobUngroupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ungroup [job.json] [section-id] [cabinet-id]",
		Short: "Move one cabinet out of a section into its own section",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := project.LoadJob(args[0])
			if err != nil {
				return err
			}
			single, err := job.Sections.Ungroup(args[1], args[2])
			if err != nil {
				return err
			}
			if err := project.SaveJob(args[0], job); err != nil {
				return err
			}
			c.printSuccess("Moved %s into section %s (%s)", args[2], single.Name, single.ID)
			return nil
		},
	}
}

func (c *CLI) jobTakeoffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "takeoff [job.json]",
		Short: "Summarize hardware and sheet goods for every cabinet in a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			job, err := project.LoadJob(args[0])
			if err != nil {
				return err
			}

			var (
				rows  [][]string
				total takeoff.Hardware
				parts []model.Part
			)
			for _, cab := range job.Cabinets {
				ed, err := c.newEditor(e, cab)
				if err != nil {
					c.printError("%s: %v", cab.Label, err)
					continue
				}
				p, err := takeoff.NewParams(cab, e.catalog, e.settings())
				if err != nil {
					c.printError("%s: %v", cab.Label, err)
					continue
				}
				res := takeoff.Calculate(ed.Root(), p)
				hw := res.BoxHardware
				total.Hinges += hw.Hinges
				total.Slides += hw.Slides
				total.Pulls += hw.Pulls
				total.AppliancePulls += hw.AppliancePulls
				parts = append(parts, res.BoxSummary.Parts...)
				rows = append(rows, []string{
					cab.Label, strconv.Itoa(len(res.FaceSummary)),
					strconv.Itoa(hw.Hinges), strconv.Itoa(hw.Slides), strconv.Itoa(hw.Pulls + hw.AppliancePulls),
				})
			}
			c.printTitle(job.Name)
			c.printTable([]string{"Cabinet", "Faces", "Hinges", "Slides", "Pulls"}, rows)

			s := e.settings()
			sheets := model.CalculateSheetEstimate(parts, s.SheetWidth, s.SheetHeight, s.KerfWidth, s.WastePercent)
			banding := model.CalculateEdgeBanding(parts, s.BandingWastePercent)
			c.printKeyValue("Hardware", strconv.Itoa(total.Total()))
			c.printKeyValue("Sheets", strconv.Itoa(sheets.SheetsWithWaste))
			if len(sheets.Oversized) > 0 {
				c.printWarning("Larger than a sheet along the grain: %s", strings.Join(sheets.Oversized, ", "))
			}
			c.printKeyValue("Banding (ft)", inches(banding.TotalWithWasteFt))
			return nil
		},
	}
}
