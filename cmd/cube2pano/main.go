package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cube2pano/internal/models"
	"cube2pano/pkg/config"
	"cube2pano/pkg/equirect"
	"cube2pano/pkg/imageio"
)

func main() {
	// Parse command line arguments
	inputDir := flag.String("input", "", "Directory containing the six cube face images (left, front, right, back, bottom, top)")
	outputPath := flag.String("output", "panorama.jpg", "Output panorama filename (.jpg or .png)")
	numCores := flag.Int("cores", 0, "Number of render workers (default: value from config, or all CPUs)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: value from config)")
	blurSigma := flag.Float64("blur", -1, "Gaussian smoothing sigma, 0 disables (default: value from config)")
	configPath := flag.String("config", "cube2pano.yaml", "Path to YAML configuration file")
	writeConfig := flag.Bool("write-config", false, "Write a default configuration file to the -config path and exit")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write config file: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	// Validate inputs
	if *inputDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Command line flags override the config file
	if *numCores > 0 {
		cfg.Render.Workers = *numCores
	}
	if *quality > 0 {
		cfg.Output.JPEGQuality = *quality
	}
	if *blurSigma >= 0 {
		cfg.Output.BlurSigma = *blurSigma
	}

	layout, err := cfg.FaceLayout()
	if err != nil {
		log.Fatalf("Invalid face layout: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("CUBE MAP TO EQUIRECTANGULAR PANORAMA CONVERTER")
	fmt.Println("================================")

	fmt.Printf("Loading cube map from %s...\n", *inputDir)
	faces, err := imageio.LoadCubeMap(*inputDir)
	if err != nil {
		log.Fatalf("Failed to load cube map: %v", err)
	}
	if cfg.Loader.NormalizeSizes {
		faces = imageio.NormalizeFaceSizes(faces)
	}

	fmt.Printf("Rendering with %d workers...\n", cfg.Render.Workers)
	startTime := time.Now()
	pano, stats, err := equirect.Assemble(faces, layout, cfg.Render.Workers)
	if err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}
	totalTime := time.Since(startTime)

	opts := imageio.SaveOptions{
		JPEGQuality: cfg.Output.JPEGQuality,
		BlurSigma:   float32(cfg.Output.BlurSigma),
	}
	if err := imageio.SavePanorama(pano, *outputPath, opts); err != nil {
		log.Fatalf("Failed to save panorama: %v", err)
	}

	fmt.Printf("\nPanorama completed successfully in %.2f seconds!\n", totalTime.Seconds())
	fmt.Printf("Output saved to: %s (%dx%d)\n\n", *outputPath, pano.Width, pano.Height)

	fmt.Printf("Render statistics:\n")
	fmt.Printf("==================\n")
	fmt.Printf("Fill time: %.3f s across %d workers\n", stats.Elapsed.Seconds(), stats.Workers)
	for f := models.XPos; f <= models.ZNeg; f++ {
		fmt.Printf("Face %s: %d pixels (%.1f%%)\n", f, stats.FaceSamples[f], stats.FaceShare[f]*100)
	}
}
