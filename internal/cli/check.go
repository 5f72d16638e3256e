package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/check"
	"github.com/andreyvit/ifc/entities"
	"github.com/andreyvit/ifc/ifcfile"
)

var errProblemsFound = errors.New("unresolvable references found")

type problemReport struct {
	File    string `json:"file" yaml:"file"`
	ID      ifc.ID `json:"id" yaml:"id"`
	Keyword string `json:"keyword" yaml:"keyword"`
	Path    string `json:"path" yaml:"path"`
	Target  ifc.ID `json:"target" yaml:"target"`
	Error   string `json:"error" yaml:"error"`
}

func (a *app) checkCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report references to missing or wrong-kind records",
		Long: `Parses each file and resolves every reference it holds, including ones
inside inline values. Exits with an error if any reference does not resolve.

Examples:
  ifctool check model.ifc
  ifctool check -f yaml *.ifc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			reports := []problemReport{}
			var found bool
			for _, path := range args {
				doc, err := ifcfile.Load(path, entities.Schema, a.docOptions())
				if err != nil {
					return err
				}
				problems := check.Dangling(doc)
				a.logger.Debug("checked", "path", path, "records", doc.Len(), "problems", len(problems))
				for _, p := range problems {
					if f == formatText {
						fmt.Fprintf(out, "%s: %v\n", path, p)
						continue
					}
					reports = append(reports, problemReport{
						File:    path,
						ID:      p.ID,
						Keyword: p.Keyword,
						Path:    p.Path,
						Target:  p.Target,
						Error:   p.Err.Error(),
					})
				}
				if len(problems) > 0 {
					found = true
				}
			}
			if f != formatText {
				err = writeStructured(out, f, reports)
				if err != nil {
					return err
				}
			}
			if found {
				return errProblemsFound
			}
			return nil
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}
