package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/mandelgen/internal/pipeline"
	"github.com/davesmith10/mandelgen/internal/raster"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the Mandelbrot set and save it as a PNG",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "mandelbrot_fractal_pattern.png", "Output PNG file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	cfg := raster.DefaultConfig()

	fmt.Println("Generating Mandelbrot...")

	result, err := pipeline.Run(pipeline.Options{Config: cfg})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fmt.Printf("Image buffer size: %d bytes\n", cfg.Width*cfg.Height*3)

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Saved %dx%d RGB → %s (%d bytes)\n", result.Width, result.Height, outputPath, len(result.Data))
	return nil
}
