// Command facet evaluates Facet scripts and exports the resulting solids.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chazu/facet/pkg/engine"
	"github.com/chazu/facet/pkg/export/scad"
	"github.com/chazu/facet/pkg/export/stl"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/kernel/bsp"
	"github.com/chazu/facet/pkg/kernel/manifold"
	"github.com/chazu/facet/pkg/kernel/sdfx"
	"github.com/chazu/facet/pkg/model"
	"github.com/chazu/facet/pkg/tessellate"
)

var logger = golog.NewDevelopmentLogger("facet")

var (
	flagOutput     string
	flagKernel     string
	flagASCII      bool
	flagTolerance  float64
	flagResolution int
)

var rootCmd = &cobra.Command{
	Use:           "facet",
	Short:         "facet evaluates solid modeling scripts and exports meshes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var renderCmd = &cobra.Command{
	Use:   "render <script>",
	Short: "Evaluate a script and write its parts as STL",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var scadCmd = &cobra.Command{
	Use:   "scad <script>",
	Short: "Evaluate a script and write it as an OpenSCAD program",
	Args:  cobra.ExactArgs(1),
	RunE:  runScad,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (default: script name with .stl)")
	renderCmd.Flags().StringVar(&flagKernel, "kernel", "bsp", "geometry kernel: bsp, sdfx, or manifold")
	renderCmd.Flags().BoolVar(&flagASCII, "ascii", false, "write ASCII STL instead of binary")
	renderCmd.Flags().Float64Var(&flagTolerance, "tolerance", 0, "plane classification tolerance for the bsp kernel (0 = default)")
	renderCmd.Flags().IntVar(&flagResolution, "resolution", 0, "marching cubes cell count for the sdfx kernel (0 = default)")

	scadCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (default: script name with .scad)")

	rootCmd.AddCommand(renderCmd, scadCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// evaluateScript runs the engine on a script file and reports script
// errors on stderr.
func evaluateScript(path string) (*model.Scene, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}

	scene, evalErrs, err := engine.NewEngine().Evaluate(string(source))
	if err != nil {
		return nil, errors.Wrap(err, "evaluate script")
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, e.Error())
		}
		return nil, errors.Errorf("script failed with %d error(s)", len(evalErrs))
	}
	if len(scene.Parts) == 0 {
		return nil, errors.New("script defines no solids (use defsolid)")
	}
	return scene, nil
}

func selectKernel() (kernel.Kernel, error) {
	switch flagKernel {
	case "bsp":
		if flagTolerance > 0 {
			return bsp.NewWithTolerance(flagTolerance), nil
		}
		return bsp.New(), nil
	case "sdfx":
		if flagResolution > 0 {
			return sdfx.NewWithResolution(flagResolution), nil
		}
		return sdfx.New(), nil
	case "manifold":
		return manifold.New()
	}
	return nil, errors.Errorf("unknown kernel %q (want bsp, sdfx, or manifold)", flagKernel)
}

func runRender(cmd *cobra.Command, args []string) error {
	script := args[0]

	scene, err := evaluateScript(script)
	if err != nil {
		return err
	}

	k, err := selectKernel()
	if err != nil {
		return err
	}

	logger.Infow("tessellating", "script", script, "kernel", flagKernel, "parts", len(scene.Parts))
	meshes, err := tessellate.Tessellate(scene, k)
	if err != nil {
		return errors.Wrap(err, "tessellate")
	}

	out := flagOutput
	if out == "" {
		out = replaceExt(script, ".stl")
	}

	for _, m := range meshes {
		path := out
		if len(meshes) > 1 {
			path = partPath(out, m.PartName)
		}
		if err := writeSTL(path, m); err != nil {
			return err
		}
		logger.Infow("wrote", "path", path, "triangles", m.TriangleCount())
	}
	return nil
}

func writeSTL(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()

	tris := stl.MeshTriangles(m)
	if flagASCII {
		err = stl.WriteASCII(f, m.PartName, tris)
	} else {
		err = stl.WriteBinary(f, m.PartName, tris)
	}
	if err != nil {
		return err
	}
	return errors.Wrap(f.Close(), "close output")
}

func runScad(cmd *cobra.Command, args []string) error {
	script := args[0]

	scene, err := evaluateScript(script)
	if err != nil {
		return err
	}

	out := flagOutput
	if out == "" {
		out = replaceExt(script, ".scad")
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()

	if err := scad.WriteScene(f, scene); err != nil {
		return err
	}
	logger.Infow("wrote", "path", out, "parts", len(scene.Parts))
	return errors.Wrap(f.Close(), "close output")
}

// replaceExt swaps a path's extension.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// partPath inserts a part name before the extension: out.stl -> out-lid.stl.
func partPath(path, part string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + part + ext
}
