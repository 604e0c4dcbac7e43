// Command imgdraw vectorizes an image and either renders a preview PNG or
// replays the drawing as pointer motion.
package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/logrusorgru/aurora"
	xdraw "golang.org/x/image/draw"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	imgdraw "github.com/flawnn/img-to-drawing"
	"github.com/flawnn/img-to-drawing/actuate"
	"github.com/flawnn/img-to-drawing/actuate/robot"
	"github.com/flawnn/img-to-drawing/preview"
)

var (
	imagePath  = kingpin.Arg("image", "Input image (PNG, JPEG, GIF, BMP, TIFF, WebP).").Required().ExistingFile()
	threshold  = kingpin.Flag("threshold", "Binarization threshold (0-255); darker pixels are traced.").Default("128").Int()
	minFeature = kingpin.Flag("min-feature", "Suppress traced regions below this pixel area.").Default("2").Int()
	optTol     = kingpin.Flag("opt-tolerance", "Curve optimization tolerance.").Default("0.3").Float64()
	corner     = kingpin.Flag("corner", "Corner detection threshold (0 = polygons only, 1.3333 = no corners).").Default("1.0").Float64()
	method     = kingpin.Flag("method", "Tessellation method.").Default("adaptive").Enum("adaptive", "fixed")
	resolution = kingpin.Flag("resolution", "Sub-segments per curve for fixed tessellation.").Default("15").Int()
	scale      = kingpin.Flag("scale", "Scale factor of the final drawing.").Default("1.1").Float64()
	keepBorder = kingpin.Flag("keep-border", "Do not drop paths that trace the image border.").Bool()
	workers    = kingpin.Flag("workers", "Parallel tessellation workers.").Default("1").Int()
	maxDim     = kingpin.Flag("max-dim", "Downscale images whose longest side exceeds this (0 = never).").Default("0").Int()
	previewOut = kingpin.Flag("preview", "Write a preview PNG here instead of drawing.").String()
	catPreview = kingpin.Flag("cat", "Also print the preview inline (iTerm2).").Bool()
	warmup     = kingpin.Flag("warmup", "Delay before drawing starts.").Default("5s").Duration()
	pace       = kingpin.Flag("pace", "Pause between pointer actions.").Default("5ms").Duration()
	verbose    = kingpin.Flag("verbose", "Enable debug logging.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	if *verbose {
		imgdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := imgdraw.DefaultConfig()
	cfg.Threshold = *threshold
	cfg.MinFeatureSize = *minFeature
	cfg.OptTolerance = *optTol
	cfg.CornerThreshold = *corner
	cfg.ScaleFactor = *scale
	cfg.SkipBorder = !*keepBorder
	cfg.Tessellation.Resolution = *resolution
	if *method == "fixed" {
		cfg.Tessellation.Method = imgdraw.Fixed
	}

	img, err := loadGray(*imagePath, *maxDim)
	if err != nil {
		log.Fatalf("load %s: %v", *imagePath, err)
	}

	p, err := imgdraw.NewPipeline(cfg, imgdraw.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}

	polylines, err := p.Run(img)
	if err != nil {
		log.Fatalf("vectorize: %v", err)
	}
	if len(polylines) == 0 {
		fmt.Println(aurora.Yellow("No drawable paths survived (empty image or border-only content)."))
		return
	}
	fmt.Printf("Vectorized %s into %s\n", *imagePath, aurora.Bold(fmt.Sprintf("%d polylines", len(polylines))))

	if *previewOut != "" {
		if err := preview.Save(polylines, *previewOut); err != nil {
			log.Fatalf("preview: %v", err)
		}
		fmt.Println(aurora.Green("Preview written to " + *previewOut))
		if *catPreview {
			preview.Cat(*previewOut, os.Stdout)
		}
		return
	}

	if err := draw(polylines); err != nil {
		log.Fatalf("draw: %v", err)
	}
}

func draw(polylines []imgdraw.Polyline) error {
	act := robot.New()
	screenW, screenH, err := act.ScreenSize()
	if err != nil {
		return fmt.Errorf("screen size: %w", err)
	}

	plan, err := actuate.Center(actuate.Compile(polylines), screenW, screenH)
	if err != nil {
		return err
	}

	fmt.Println(aurora.Bold(fmt.Sprintf("Drawing starts in %s.", *warmup)))
	fmt.Println("Switch to your drawing application window now. Ctrl+C cancels.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := &actuate.Driver{Actuator: act, WarmUp: *warmup, Pace: *pace}
	start := time.Now()
	if err := d.Replay(ctx, plan); err != nil {
		return err
	}
	fmt.Println(aurora.Green(fmt.Sprintf("Drew %d actions in %s.", len(plan), time.Since(start).Round(time.Millisecond))))
	return nil
}

// loadGray decodes the image, converts it to grayscale, and downscales it
// if its longest side exceeds maxDim.
func loadGray(path string, maxDim int) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	g := imgdraw.Grayscale(img)

	b := g.Bounds()
	longest := max(b.Dx(), b.Dy())
	if maxDim <= 0 || longest <= maxDim {
		return g, nil
	}

	f64 := float64(maxDim) / float64(longest)
	dst := image.NewGray(image.Rect(0, 0,
		int(float64(b.Dx())*f64), int(float64(b.Dy())*f64)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), g, b, xdraw.Src, nil)
	return dst, nil
}
