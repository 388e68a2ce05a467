package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CabFace/internal/engine"
	"github.com/piwi3910/CabFace/internal/model"
	"github.com/piwi3910/CabFace/internal/project"
)

// templatesPath keeps the template store next to the config file.
func (e env) templatesPath() string {
	return filepath.Join(filepath.Dir(e.configPath), "templates.json")
}

func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save and reuse face layouts",
	}
	cmd.AddCommand(c.templateSaveCommand())
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateRemoveCommand())
	return cmd
}

func (c *CLI) templateSaveCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save [name] [cabinet.json]",
		Short: "Save the face of a cabinet as a named template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			ed, err := c.openCabinet(e, args[1])
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(e.templatesPath())
			if err != nil {
				return err
			}
			store.Add(model.NewFaceTemplate(args[0], description, ed.Cabinet()))
			if err := project.SaveTemplates(e.templatesPath(), store); err != nil {
				return err
			}
			c.printSuccess("Saved template %q", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved face templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(e.templatesPath())
			if err != nil {
				return err
			}
			var rows [][]string
			for _, t := range store.Templates {
				size := fmt.Sprintf("%sx%s", inches(t.Width), inches(t.Height))
				rows = append(rows, []string{t.Name, strconv.Itoa(t.TypeID), size, strconv.Itoa(engine.CountNodes(t.Face).Faces), t.Description})
			}
			c.printTable([]string{"Name", "Type", "Drawn at", "Faces", "Description"}, rows)
			return nil
		},
	}
}

func (c *CLI) templateRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]",
		Short: "Delete a saved face template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(e.templatesPath())
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("no template named %q", args[0])
			}
			if err := project.SaveTemplates(e.templatesPath(), store); err != nil {
				return err
			}
			c.printSuccess("Removed template %q", args[0])
			return nil
		},
	}
}

// backupCommand exports or restores the config and template store.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore preferences and templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export [backup.json]",
		Short: "Write preferences and templates to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(e.templatesPath())
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], e.config, store); err != nil {
				return err
			}
			c.printFile(args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import [backup.json]",
		Short: "Restore preferences and templates from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.loadEnv()
			if err != nil {
				return err
			}
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(e.configPath, backup.Config); err != nil {
				return err
			}
			if err := project.SaveTemplates(e.templatesPath(), backup.Templates); err != nil {
				return err
			}
			c.printSuccess("Restored %d templates from %s", len(backup.Templates.Templates), backup.CreatedAt)
			return nil
		},
	})
	return cmd
}
