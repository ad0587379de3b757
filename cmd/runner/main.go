package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/nemanja-m/goscatter"
	"github.com/nemanja-m/goscatter/internal/dataset"
	"github.com/nemanja-m/goscatter/registry"

	_ "github.com/nemanja-m/goscatter/examples/dft"
	_ "github.com/nemanja-m/goscatter/examples/identity"
	_ "github.com/nemanja-m/goscatter/examples/movavg"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	var (
		input     = flag.String("input", "", "input sample files glob pattern (one float per line)")
		generate  = flag.Int("generate", 0, "generate N sine samples instead of reading files")
		transform = flag.String("transform", "", "transform to run (e.g., identity, dft, movavg)")
		workers   = flag.Int("workers", 4, "number of workers")
		timeout   = flag.Duration("timeout", 30*time.Second, "aggregate timeout for the whole run")
		width     = flag.Int("width", 0, "output width (0 keeps the longest partial result)")
		output    = flag.String("output", "", "output file (default: stdout)")
	)
	flag.Parse()

	if *input == "" && *generate <= 0 {
		log.Fatal("Either -input or -generate must be specified")
	}
	if *workers <= 0 {
		log.Fatal("Number of workers must be > 0")
	}

	transformImpl, err := registry.Get(*transform)
	if err != nil {
		log.Fatalf("Unknown transform: '%s'. Available transforms: %s", *transform, strings.Join(registry.List(), ", "))
	}

	var samples []float64
	if *input != "" {
		samples, err = dataset.LoadGlob([]string{*input})
		if err != nil {
			log.Fatalf("Failed to load dataset: %v", err)
		}
	} else {
		samples = dataset.Sine(*generate, 50.0, 8000.0, 1.0)
	}

	coordinator, err := goscatter.NewCoordinator(goscatter.Config{
		Workers:   *workers,
		Timeout:   *timeout,
		Transform: transformImpl,
		Reducer:   goscatter.TransposeSum{Width: *width},
	})
	if err != nil {
		log.Fatalf("Invalid run configuration: %v", err)
	}

	log.Printf(
		"Starting run: transform=%s, samples=%d, workers=%d, timeout=%s",
		*transform,
		len(samples),
		*workers,
		*timeout,
	)

	start := time.Now()
	result, err := coordinator.Run(context.Background(), samples)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	log.Printf("Run completed in %s, result length: %d", time.Since(start), len(result))

	if err := writeResult(*output, result); err != nil {
		log.Fatalf("Failed to write result: %v", err)
	}
}

func writeResult(path string, result []float64) error {
	out := os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	w := bufio.NewWriter(out)
	for _, value := range result {
		fmt.Fprintf(w, "%g\n", value)
	}
	return w.Flush()
}
