package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andreyvit/ifc/archive"
	"github.com/andreyvit/ifc/entities"
	"github.com/andreyvit/ifc/ifcfile"
)

func (a *app) archiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Store parsed models in the local archive",
		Long: `The archive keeps parsed models in a Bolt database (see "archive" in
config.toml), one key per record. Stored models are listed and reloaded by
name; names default to the slugified file name.`,
	}
	cmd.AddCommand(
		a.archivePutCommand(),
		a.archiveGetCommand(),
		a.archiveListCommand(),
		a.archiveRemoveCommand(),
	)
	return cmd
}

func (a *app) withArchive(f func(ar *archive.Archive) error) error {
	ar, err := a.openArchive()
	if err != nil {
		return err
	}
	err = f(ar)
	cerr := ar.Close()
	if err == nil {
		err = cerr
	}
	return err
}

func (a *app) archivePutCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "put FILE...",
		Short: "Parse files and store them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" && len(args) > 1 {
				return fmt.Errorf("--name requires a single file")
			}
			return a.withArchive(func(ar *archive.Archive) error {
				for _, path := range args {
					doc, err := ifcfile.Load(path, entities.Schema, a.docOptions())
					if err != nil {
						return err
					}
					n := name
					if n == "" {
						n = archive.NameFor(path)
					}
					changed, err := ar.Put(n, doc)
					if err != nil {
						return err
					}
					status := "stored"
					if !changed {
						status = "unchanged"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s as %s (%d records)\n", path, status, n, doc.Len())
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name to store under (default: derived from the file name)")
	return cmd
}

func (a *app) archiveGetCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Render a stored model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(func(ar *archive.Archive) error {
				doc, err := ar.Get(args[0], a.docOptions())
				if err != nil {
					return err
				}
				if output != "" {
					return ifcfile.Save(output, doc)
				}
				_, err = doc.WriteTo(cmd.OutOrStdout())
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func (a *app) archiveListCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored models",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			return a.withArchive(func(ar *archive.Archive) error {
				entries, err := ar.List()
				if err != nil {
					return err
				}
				if f != formatText {
					return writeStructured(cmd.OutOrStdout(), f, entries)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tFILE\tSCHEMA\tRECORDS\tSIZE\tUPDATED")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", e.Name, e.FileName, e.Schema, e.Records, e.Size, e.Updated.UTC().Format("2006-01-02 15:04"))
				}
				return tw.Flush()
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func (a *app) archiveRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME...",
		Aliases: []string{"remove"},
		Short:   "Remove stored models",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withArchive(func(ar *archive.Archive) error {
				for _, name := range args {
					err := ar.Delete(name)
					if err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
