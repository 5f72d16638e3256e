package cli

import (
	"github.com/spf13/cobra"

	"github.com/andreyvit/ifc/builder"
	"github.com/andreyvit/ifc/entities"
	"github.com/andreyvit/ifc/ifcfile"
)

func (a *app) demoCommand() *cobra.Command {
	var output, name string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a sample model",
		Long: `Builds a one-storey model with a wall, a window in an opening, and a
space, and prints it. Header author and organization come from the
[header] section of config.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.demoProject(name)
			if output != "" {
				p.Build()
				return ifcfile.Save(output, p.Document())
			}
			_, err := cmd.OutOrStdout().Write([]byte(p.Build()))
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&name, "name", "Demo", "Project name")
	return cmd
}

func (a *app) demoProject(name string) *builder.Project {
	p := builder.New(builder.Options{
		Name:         name,
		Author:       a.cfg.Header.Author,
		Organization: a.cfg.Header.Organization,
		Application:  a.cfg.Header.Application,
		Logf:         a.logf,
		Verbose:      a.verbose,
	})
	st := p.Site("Site", entities.Vec3{}).
		Building("Building", entities.Vec3{}).
		Storey("Ground floor", 0)

	layer := st.MaterialLayer("Brick", 0.24, false)
	set := st.MaterialLayerSet(layer)
	usage := st.MaterialLayerSetUsage(set, entities.Axis2, entities.Positive, 0)
	wallType := st.WallType(set, "Brick wall", entities.WallStandard)
	wall := st.VerticalWall(usage, wallType, "South wall", builder.VerticalWallParameter{
		Height: 3, Length: 6,
	})

	windowType := st.WindowType("Single panel window", entities.WindowWindow, entities.SinglePanel)
	frame := st.MaterialConstituent("Wood", "Framing")
	frames := st.MaterialConstituentSet(frame)
	st.WallWindowWithOpening(frames, windowType, wall, "Window", builder.WindowParameter{
		Height: 1.2, Width: 1, Placement: entities.Vec3{X: 2.5, Z: 0.9},
	})

	spaceType := st.SpaceType("Room", entities.SpaceInternal)
	st.Space(spaceType, "Living room", builder.SpaceParameter{
		Coords: []entities.Vec2{{0, 0}, {0, 4}, {6, 4}, {6, 0}, {0, 0}},
		Height: 3,
	})
	return p
}
