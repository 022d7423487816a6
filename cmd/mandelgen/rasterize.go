package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/davesmith10/mandelgen/internal/raster"
	"github.com/spf13/cobra"
)

var rasterizeCmd = &cobra.Command{
	Use:   "rasterize",
	Short: "Render the raw RGB pixel buffer (raw output + JSON sidecar)",
	RunE:  runRasterize,
}

func init() {
	rasterizeCmd.Flags().StringP("output", "o", "", "Output raw RGB file")
	rasterizeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(rasterizeCmd)
}

type rasterMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

func runRasterize(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	img := raster.Render(raster.DefaultConfig())

	if err := os.WriteFile(outputPath, img.Pixels, 0644); err != nil {
		return fmt.Errorf("writing raw RGB: %w", err)
	}

	// Write JSON sidecar
	meta := rasterMeta{
		Width:  img.Width,
		Height: img.Height,
		Format: "RGB8",
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Printf("Rasterized %dx%d → raw RGB (%d bytes)\n", img.Width, img.Height, len(img.Pixels))
	fmt.Printf("Sidecar: %s\n", metaPath)
	return nil
}
