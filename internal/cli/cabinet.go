package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/model"
	"github.com/piwi3910/CabFace/internal/project"
)

// newCommand creates a cabinet file with the default face for its type.
func (c *CLI) newCommand() *cobra.Command {
	var (
		output               string
		width, height, depth float64
		styleID, typeID      int
		templateName         string
	)

	cmd := &cobra.Command{
		Use:   "new [label]",
		Short: "Create a cabinet file with its default face",
		Long: `Create a cabinet file with its default face.

Depth, style and item type fall back to the app config defaults. The face
starts as a single leaf of the item type's default face type, or as a copy of
a saved face template scaled to the new size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("depth") {
				depth = e.config.DefaultDepth
			}
			if !cmd.Flags().Changed("style") {
				styleID = e.config.DefaultStyleID
			}
			if !cmd.Flags().Changed("type") {
				typeID = e.config.DefaultTypeID
			}
			if output == "" {
				output = args[0] + ".json"
			}

			cab := model.NewCabinet(args[0], width, height, depth, styleID, typeID)
			if templateName != "" {
				store, err := project.LoadTemplates(e.templatesPath())
				if err != nil {
					return err
				}
				tmpl := store.FindByName(templateName)
				if tmpl == nil {
					return fmt.Errorf("no template named %q", templateName)
				}
				if !cmd.Flags().Changed("type") {
					typeID = tmpl.TypeID
				}
				cab = tmpl.ToCabinet(args[0], width, height, depth, styleID)
				cab.TypeID = typeID
			}

			ed, err := c.newEditor(e, cab)
			if err != nil {
				return err
			}
			if err := c.saveCabinet(e, output, ed.Cabinet()); err != nil {
				return err
			}
			c.printSuccess("Created %s", args[0])
			c.printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <label>.json)")
	cmd.Flags().Float64VarP(&width, "width", "W", 0, "cabinet width in inches")
	cmd.Flags().Float64VarP(&height, "height", "H", 0, "cabinet height in inches")
	cmd.Flags().Float64VarP(&depth, "depth", "D", 0, "cabinet depth in inches")
	cmd.Flags().IntVar(&styleID, "style", 0, "catalog style id")
	cmd.Flags().IntVar(&typeID, "type", 0, "catalog item type id")
	cmd.Flags().StringVar(&templateName, "template", "", "start from a saved face template")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

// layoutCommand prints the absolute position of every face leaf.
func (c *CLI) layoutCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout [cabinet.json]",
		Short: "Print the laid-out face leaves of a cabinet",
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
			laid := ed.Layout()
			if asJSON {
				return c.writeJSON(laid)
			}
			c.printLayout(ed.Cabinet(), laid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the laid-out tree as JSON")
	return cmd
}

func (c *CLI) printLayout(cab model.Cabinet, laid *model.FaceNode) {
	c.printTitle(fmt.Sprintf("%s  %sx%sx%s", cab.Label, inches(cab.Width), inches(cab.Height), inches(cab.Depth)))

	var rows [][]string
	laid.Walk(func(n, _ *model.FaceNode) bool {
		if n.IsLeaf() {
			rows = append(rows, []string{n.ID, n.Type.String(), inches(n.X), inches(n.Y), inches(n.Width), inches(n.Height)})
		}
		return true
	})
	c.printTable([]string{"Node", "Type", "X", "Y", "Width", "Height"}, rows)

	s := engine.CountNodes(laid)
	c.printKeyValue("Faces", strconv.Itoa(s.Faces))
	c.printKeyValue("Reveals", strconv.Itoa(s.Reveals))
	c.printKeyValue("Depth", strconv.Itoa(s.Depth))
}

// validateCommand checks a stored face config as written, before any repair.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [cabinet.json]",
		Short: "Check a stored face config for structural problems",
		Long: `Check a stored face config for structural problems.

The face is checked exactly as stored. Opening the file with any other
command repairs what it can, so a clean validate means no repair is needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cab, err := project.LoadCabinet(args[0])
			if err != nil {
				return err
			}
			if cab.FaceConfig == nil {
				c.printWarning("%s has no face config; the default face will be used", cab.Label)
				return nil
			}
			violations := engine.Validate(cab.FaceConfig)
			if len(violations) == 0 {
				c.printSuccess("%s: face config is valid", cab.Label)
				return nil
			}
			for _, v := range violations {
				c.printError("%s", v)
			}
			return fmt.Errorf("%d problems found", len(violations))
		},
	}
}

func (c *CLI) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.Out, string(data))
	return err
}

// errEditsRejected is returned when edit finishes with rejected operations.
var errEditsRejected = errors.New("some edits were rejected")
