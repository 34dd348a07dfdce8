package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"morphkit/pkg/config"
	"morphkit/pkg/metrics"
	"morphkit/pkg/morph"
	"morphkit/pkg/ndarray"
	"morphkit/pkg/se"
)

func main() {
	inputPath := flag.String("input", "", "Grayscale PNG or JPEG image to process")
	outputPath := flag.String("output", "output.png", "Output image path")
	op := flag.String("op", "erode", "Operation: erode, dilate, open, close, majority")
	configPath := flag.String("config", "", "Optional YAML config file")
	windowSize := flag.Int("window", 0, "Majority filter window size (0 uses config default)")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *windowSize == 0 {
		*windowSize = cfg.MajorityFilter.WindowSize
	}

	fmt.Println("================================")
	fmt.Println("morphkit — N-dimensional mathematical morphology demo")
	fmt.Println("================================")

	operand, shape, err := loadGray(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	seView := structuringElement(cfg.Processing.DefaultConnectivity)

	fmt.Printf("Running %q on a %dx%d image...\n", *op, shape[0], shape[1])
	startTime := time.Now()

	out := ndarray.New(shape, make([]uint8, len(operand.Data)))
	var report metrics.Report

	switch *op {
	case "erode":
		offs, err := se.BuildFlat(seView, operand)
		if err != nil {
			log.Fatalf("Failed to build structuring element: %v", err)
		}
		if err := morph.ErodeFlat(out, operand, offs, cfg.Processing.Parallelism); err != nil {
			log.Fatalf("Erode failed: %v", err)
		}
	case "dilate":
		offs, err := se.BuildFlat(seView, operand)
		if err != nil {
			log.Fatalf("Failed to build structuring element: %v", err)
		}
		if err := morph.DilateFlat(out, operand, offs, cfg.Processing.Parallelism); err != nil {
			log.Fatalf("Dilate failed: %v", err)
		}
	case "open":
		offs, err := se.BuildFlat(seView, operand)
		if err != nil {
			log.Fatalf("Failed to build structuring element: %v", err)
		}
		tmp := ndarray.New(shape, make([]uint8, len(operand.Data)))
		if err := morph.ErodeFlat(tmp, operand, offs, cfg.Processing.Parallelism); err != nil {
			log.Fatalf("Erode failed: %v", err)
		}
		if err := morph.DilateFlat(out, tmp, offs, cfg.Processing.Parallelism); err != nil {
			log.Fatalf("Dilate failed: %v", err)
		}
	case "close":
		offs, err := se.BuildFlat(seView, operand)
		if err != nil {
			log.Fatalf("Failed to build structuring element: %v", err)
		}
		tmp := ndarray.New(shape, make([]uint8, len(operand.Data)))
		if err := morph.DilateFlat(tmp, operand, offs, cfg.Processing.Parallelism); err != nil {
			log.Fatalf("Dilate failed: %v", err)
		}
		if err := morph.ErodeFlat(out, tmp, offs, cfg.Processing.Parallelism); err != nil {
			log.Fatalf("Erode failed: %v", err)
		}
	case "majority":
		boolOperand := ndarray.New(shape, toBoolMask(operand.Data))
		boolOut := ndarray.New(shape, make([]bool, len(operand.Data)))
		if err := morph.MajorityFilter(boolOut, boolOperand, *windowSize); err != nil {
			log.Fatalf("MajorityFilter failed: %v", err)
		}
		report = metrics.ComputeBool(boolOut)
		out = ndarray.New(shape, fromBoolMask(boolOut.Data))
	default:
		log.Fatalf("Unknown operation %q", *op)
	}

	if *op != "majority" {
		report = metrics.Compute[uint8](out, nil)
	}

	processingTime := time.Since(startTime)

	if err := saveGray(*outputPath, out, shape); err != nil {
		log.Fatalf("Failed to save output image: %v", err)
	}

	fmt.Printf("\nCompleted in %.4f seconds.\n", processingTime.Seconds())
	fmt.Printf("Output image saved to: %s\n\n", *outputPath)

	fmt.Println("Report:")
	fmt.Println("=======")
	fmt.Printf("Regions: %d\n", report.NumRegions)
	fmt.Printf("Label entropy: %.4f\n", report.LabelEntropy)
	if report.LineFraction > 0 {
		fmt.Printf("Watershed line fraction: %.4f\n", report.LineFraction)
	}
}

func structuringElement(connectivity string) ndarray.View[uint8] {
	if connectivity == "box" {
		return ndarray.New([]int{3, 3}, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1})
	}
	return ndarray.New([]int{3, 3}, []uint8{0, 1, 0, 1, 1, 1, 0, 1, 0})
}

func toBoolMask(data []uint8) []bool {
	out := make([]bool, len(data))
	for i, v := range data {
		out[i] = v >= 128
	}
	return out
}

func fromBoolMask(data []bool) []uint8 {
	out := make([]uint8, len(data))
	for i, v := range data {
		if v {
			out[i] = 255
		}
	}
	return out
}

func loadGray(path string) (ndarray.View[uint8], []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return ndarray.View[uint8]{}, nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return ndarray.View[uint8]{}, nil, err
	}

	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	data := make([]uint8, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			gray := img.At(bounds.Min.X+c, bounds.Min.Y+r)
			y, _, _, _ := gray.RGBA()
			data[r*cols+c] = uint8(y >> 8)
		}
	}
	shape := []int{rows, cols}
	return ndarray.New(shape, data), shape, nil
}

func saveGray(path string, view ndarray.View[uint8], shape []int) error {
	rows, cols := shape[0], shape[1]
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			img.SetGray(c, r, color.Gray{Y: view.At([]int{r, c})})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}
