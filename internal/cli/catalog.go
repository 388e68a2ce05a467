package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CabFace/internal/catalog"
)

// catalogCommand lists the active catalog or writes it out for editing.
func (c *CLI) catalogCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List styles, item types and accessories",
		Long: `List styles, item types and accessories.

With --output the active catalog is written to a YAML or TOML file that can
be edited and passed back with --catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			if output != "" {
				if err := catalog.Save(output, e.catalog); err != nil {
					return err
				}
				c.printFile(output)
				return nil
			}
			c.printCatalog(e.catalog)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the catalog to a .yaml or .toml file")
	return cmd
}

func (c *CLI) printCatalog(cat *catalog.Catalog) {
	c.printTitle("Styles")
	var rows [][]string
	for _, s := range cat.Styles {
		r := s.Reveals
		rows = append(rows, []string{
			strconv.Itoa(s.ID), s.Name,
			strings.Join([]string{inches(r.Top), inches(r.Bottom), inches(r.Left), inches(r.Right)}, " / "),
			inches(r.Reveal), strconv.FormatBool(s.FaceFrame),
		})
	}
	c.printTable([]string{"ID", "Name", "T / B / L / R", "Reveal", "Face frame"}, rows)

	c.printTitle("Item types")
	rows = nil
	for _, t := range cat.Types {
		rows = append(rows, []string{strconv.Itoa(t.ID), t.Name, string(t.Kind), t.DefaultFace.String()})
	}
	c.printTable([]string{"ID", "Name", "Kind", "Default face"}, rows)

	c.printTitle("Accessories")
	rows = nil
	for _, a := range cat.Accessories {
		types := make([]string, len(a.NodeTypes))
		for i, t := range a.NodeTypes {
			types[i] = string(t)
		}
		rows = append(rows, []string{a.ID, a.Name, strings.Join(types, ", "), inches(a.Inset)})
	}
	c.printTable([]string{"ID", "Name", "Fits", "Inset"}, rows)
}
