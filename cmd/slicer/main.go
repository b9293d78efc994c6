// Command slicer is the CLI front end over meshio, slicer, gcodegen, and
// svgpreview, built around a root cobra.Command with a subcommand per
// pipeline stage - the same shape krasin-steel's main.go uses (info/scale/
// slice/cut subcommands, package-level flag variables, openIn/openOut
// helpers around stdin/stdout).
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kiln3d/slicer/gcodegen"
	"github.com/kiln3d/slicer/mesh"
	"github.com/kiln3d/slicer/meshio"
	"github.com/kiln3d/slicer/parallel"
	"github.com/kiln3d/slicer/slicer"
	"github.com/kiln3d/slicer/svgpreview"
)

var (
	outPath           string
	layerHeight       uint64
	hotendTemperature int
	travelSpeed       int
	inchUnits         bool
	parallelWorkers   int
)

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func openIn(args []string) (string, io.ReadCloser, error) {
	if len(args) == 0 {
		return "<stdin>", os.Stdin, nil
	}
	f, err := os.Open(args[0])
	return args[0], f, err
}

func openOut(path string) (io.WriteCloser, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

func outputDestination() string {
	if outPath == "" {
		return "<stdout>"
	}
	return outPath
}

func readMesh(args []string) (*meshio.ParsedMesh, error) {
	name, r, err := openIn(args)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	units := meshio.Millimeters
	if inchUnits {
		units = meshio.Inches
	}
	m, err := meshio.Parse(data, units)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &meshio.ParsedMesh{Name: name, Mesh: m}, nil
}

func info(cmd *cobra.Command, args []string) {
	parsed, err := readMesh(args)
	if err != nil {
		fail(err)
	}
	fmt.Printf("File: %s\n", parsed.Name)
	fmt.Printf("Facets: %d\n", parsed.Mesh.FacetCount())
}

func runSlice(cmd *cobra.Command, args []string) ([]slicer.Slice, error) {
	parsed, err := readMesh(args)
	if err != nil {
		return nil, err
	}
	config := slicer.SlicerConfig{
		LayerHeight:       layerHeight,
		HotendTemperature: hotendTemperature,
		TravelSpeed:       travelSpeed,
	}
	scene := parsed.Mesh.ToScene()
	if parallelWorkers > 1 {
		return sliceParallel(config, scene)
	}
	return slicer.Slice(config, scene)
}

// sliceParallel is the --workers > 1 entry point: it builds a
// parallel.Index over the scene's facets and fans the sweep out across
// goroutines instead of running sweep.FacetFilter serially. The worker
// count flag only selects which driver to use - parallel.SliceConcurrently
// itself fans out one goroutine per layer, capped by Go's own scheduler
// rather than a fixed-size pool, since layer counts are typically in the
// hundreds and errgroup imposes no further limit by default.
func sliceParallel(config slicer.SlicerConfig, scene *mesh.Scene) ([]slicer.Slice, error) {
	facets := scene.Facets()
	if len(facets) == 0 {
		return nil, slicer.NewError(slicer.EmptyScene, "scene has no triangles")
	}

	index := parallel.NewIndex(facets)
	lowerZ, upperZ := index.Bounds()
	layerCount := int((upperZ-lowerZ)/int64(config.LayerHeight)) + 1

	return parallel.SliceConcurrently(config, index, layerCount)
}

func gcode(cmd *cobra.Command, args []string) {
	slices, err := runSlice(cmd, args)
	if err != nil {
		fail(err)
	}
	log.Printf("sliced %d layers", len(slices))
	w, err := openOut(outPath)
	if err != nil {
		fail(err)
	}
	defer w.Close()

	config := slicer.SlicerConfig{
		LayerHeight:       layerHeight,
		HotendTemperature: hotendTemperature,
		TravelSpeed:       travelSpeed,
	}
	fmt.Fprintln(w, gcodegen.Generate(config, slices))
	log.Printf("wrote G-code to %s", outputDestination())
}

func preview(cmd *cobra.Command, args []string) {
	slices, err := runSlice(cmd, args)
	if err != nil {
		fail(err)
	}
	log.Printf("sliced %d layers", len(slices))
	docs := svgpreview.RenderStack(slices)
	if outPath == "" {
		for _, doc := range docs {
			os.Stdout.Write(doc)
		}
		return
	}
	for i, doc := range docs {
		path := fmt.Sprintf("%s.%03d.svg", outPath, i)
		if err := os.WriteFile(path, doc, 0644); err != nil {
			fail(err)
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "slicer",
		Short: "Converts triangulated meshes into vertically ordered 2D layer stacks",
	}

	infoCmd := &cobra.Command{
		Use:   "info [STL file]",
		Short: "Reports facet count for an STL file",
		Run:   info,
	}
	rootCmd.AddCommand(infoCmd)

	gcodeCmd := &cobra.Command{
		Use:   "gcode [STL file]",
		Short: "Slices an STL file and emits G-code",
		Run:   gcode,
	}
	gcodeCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output G-code file. By default, stdout.")
	gcodeCmd.Flags().Uint64VarP(&layerHeight, "layer-height", "l", 200, "Layer height in microns.")
	gcodeCmd.Flags().IntVar(&hotendTemperature, "hotend-temp", 200, "Hotend temperature in Celsius.")
	gcodeCmd.Flags().IntVar(&travelSpeed, "travel-speed", 3000, "Travel speed in mm/min.")
	gcodeCmd.Flags().BoolVar(&inchUnits, "inches", false, "Interpret the STL file's coordinates as inches.")
	gcodeCmd.Flags().IntVarP(&parallelWorkers, "workers", "j", 1, "Number of slice workers to run concurrently.")
	rootCmd.AddCommand(gcodeCmd)

	previewCmd := &cobra.Command{
		Use:   "preview [STL file]",
		Short: "Slices an STL file and emits one SVG cross-section per layer",
		Run:   preview,
	}
	previewCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file base path. By default, concatenated to stdout.")
	previewCmd.Flags().Uint64VarP(&layerHeight, "layer-height", "l", 200, "Layer height in microns.")
	previewCmd.Flags().BoolVar(&inchUnits, "inches", false, "Interpret the STL file's coordinates as inches.")
	previewCmd.Flags().IntVarP(&parallelWorkers, "workers", "j", 1, "Number of slice workers to run concurrently.")
	rootCmd.AddCommand(previewCmd)

	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}
