package cli

import (
	"github.com/spf13/cobra"
)

// editCommand applies a sequence of face edits to a cabinet file.
func (c *CLI) editCommand() *cobra.Command {
	var (
		output    string
		ops       []string
		keepGoing bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "edit [cabinet.json]",
		Short: "Apply face edits to a cabinet and save it",
		Long: `Apply face edits to a cabinet and save it.

Each --op is a verb and colon-separated operands, applied in order:

  split:NODE:h|v            split a face leaf side by side (h) or stacked (v)
  delete:NODE               remove a face and its adjacent reveal
  type:NODE:FACE            set a leaf type (door, pair_door, drawer_front, ...)
  dim:NODE:INCHES           set a face or reveal size, trading with a sibling
  equalize:CONTAINER        give every face in a container the same size
  drag:NODE:SIBLING:PIXELS  move the reveal between two faces
  size:W:H:D                resize the cabinet, scaling the face
  style:ID | item:ID        change the construction style or item type
  shelves:NODE:N            set adjustable shelves on a leaf
  rollouts:NODE:N           set roll-out trays on a leaf
  glass:NODE:PANEL[:SHELF]  reference glass parts
  accessory:NODE:DEF        attach a catalog accessory
  detach:NODE:ACCESSORY     remove an attached accessory
  reset                     go back to the default face

A rejected edit leaves the face unchanged. By default the first rejection
aborts without saving; with --keep-going the rest still apply.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			parsed := make([]editOp, 0, len(ops))
			for _, s := range ops {
				op, err := parseOp(s)
				if err != nil {
					return err
				}
				parsed = append(parsed, op)
			}

			ed, err := c.openCabinet(e, args[0])
			if err != nil {
				return err
			}

			rejected := 0
			for _, op := range parsed {
				if err := applyOp(ed, op); err != nil {
					if !keepGoing {
						return err
					}
					c.printWarning("%s: %v", op, err)
					rejected++
					continue
				}
				c.printSuccess("%s", op)
			}

			if dryRun {
				c.printLayout(ed.Cabinet(), ed.Layout())
			} else {
				if output == "" {
					output = args[0]
				}
				if err := c.saveCabinet(e, output, ed.Cabinet()); err != nil {
					return err
				}
				c.printFile(output)
			}
			if rejected > 0 {
				return errEditsRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringArrayVar(&ops, "op", nil, "edit to apply, repeatable")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue past rejected edits")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resulting layout instead of saving")

	return cmd
}
