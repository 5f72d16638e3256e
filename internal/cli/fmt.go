package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andreyvit/ifc/entities"
	"github.com/andreyvit/ifc/ifcfile"
)

func (a *app) fmtCommand() *cobra.Command {
	var write, list bool
	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Re-render files in canonical form",
		Long: `Parses each file and renders it back in canonical form: one record per
line, no whitespace between tokens, reals in shortest form.

Without flags the result is printed. With -w files that are not already
canonical are rewritten in place; with -l their names are printed instead.

Examples:
  ifctool fmt model.ifc
  ifctool fmt -w *.ifc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				doc, err := ifcfile.Load(path, entities.Schema, a.docOptions())
				if err != nil {
					return err
				}
				if !write && !list {
					_, err = doc.WriteTo(out)
					if err != nil {
						return err
					}
					continue
				}

				orig, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if bytes.Equal(orig, doc.AppendTo(nil)) {
					continue
				}
				if list {
					fmt.Fprintln(out, path)
				}
				if write {
					a.logger.Debug("rewriting", "path", path)
					err = ifcfile.Save(path, doc)
					if err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result to the source file")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List files whose formatting differs")
	return cmd
}
