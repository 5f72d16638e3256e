package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
	"github.com/andreyvit/ifc/ifcfile"
)

type fileStats struct {
	File string `json:"file" yaml:"file"`
	ifc.Stats `yaml:",inline"`
}

func (a *app) statsCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Count records per keyword",
		Long: `Reports the number of records and rendered attribute bytes per keyword,
most frequent first.

Examples:
  ifctool stats model.ifc
  ifctool stats -f json model.ifc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var all []fileStats
			for _, path := range args {
				doc, err := ifcfile.Load(path, entities.Schema, a.docOptions())
				if err != nil {
					return err
				}
				if f == formatText {
					fmt.Fprintf(out, "%s\n%s", path, doc.Dump(ifc.DumpHeader|ifc.DumpStats))
					continue
				}
				all = append(all, fileStats{File: path, Stats: doc.Stats()})
			}
			if f == formatText {
				return nil
			}
			return writeStructured(out, f, all)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}
