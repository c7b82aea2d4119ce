package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gocv.io/x/gocv"

	"motviz/mot"
	"motviz/overlay"
	"motviz/video"
)

var (
	txtPath       = flag.String("txt_path", "", "path to the tracking result log (MOT 10-column format, required)")
	imgDir        = flag.String("img_dir", "", "directory of numbered .jpg frames (required)")
	outputPath    = flag.String("output_path", defaultOutputPath, "destination mp4 path")
	fps           = flag.Int("fps", 30, "output frame rate")
	seed          = flag.Int64("seed", 0, "palette seed; equal seeds reproduce identical track colors")
	onDecodeError = flag.String("on_decode_error", decodeErrorSkip, "per-frame decode failure policy: skip or abort")
	configPath    = flag.String("config", "", "optional TOML config file; explicit flags override its values")
)

func logMsg(component, format string, args ...interface{}) {
	fmt.Printf("[%s] %s\n", component, fmt.Sprintf(format, args...))
}

func warnMsg(component, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] WARNING: %s\n", component, fmt.Sprintf(format, args...))
}

func main() {
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			fatal(err)
		}
	}
	applyFlags(cfg)
	if err := cfg.validate(); err != nil {
		fatal(err)
	}

	status, err := run(cfg)
	if err != nil {
		fatal(err)
	}
	if status != video.StatusSuccess {
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// applyFlags copies every flag the user explicitly set over the config,
// so flags win against config file values.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "txt_path":
			cfg.TxtPath = *txtPath
		case "img_dir":
			cfg.ImgDir = *imgDir
		case "output_path":
			cfg.OutputPath = *outputPath
		case "fps":
			cfg.FPS = *fps
		case "seed":
			cfg.Seed = *seed
		case "on_decode_error":
			cfg.OnDecodeError = *onDecodeError
		}
	})
}

// run executes the whole pipeline: load records, assign colors, render
// each frame in sorted order, finalize and verify the artifact. The
// returned status is only meaningful when err is nil.
func run(cfg *Config) (video.Status, error) {
	logMsg("LOAD", "reading tracking results: %s", cfg.TxtPath)
	records, err := mot.Load(cfg.TxtPath)
	if err != nil {
		return 0, err
	}

	ids := records.IDs()
	logMsg("LOAD", "%d records, %d track ids", records.Len(), len(ids))

	palette := overlay.NewPalette(cfg.Seed)
	palette.Assign(ids)
	logMsg("COLOR", "assigned %d track colors (seed %d)", palette.Len(), cfg.Seed)

	frames, err := video.ListFrames(cfg.ImgDir)
	if err != nil {
		return 0, err
	}
	logMsg("FRAMES", "%d jpg frames in %s", len(frames), cfg.ImgDir)

	renderer := overlay.NewRenderer(palette)
	stats := newRenderStats(len(frames))

	// The sink opens lazily on the first decodable frame; its dimensions
	// fix the stream for the rest of the run.
	var sink *video.Sink
	for i, ff := range frames {
		frameNum := i + 1

		img := gocv.IMRead(ff.Path, gocv.IMReadColor)
		if img.Empty() {
			img.Close()
			if cfg.OnDecodeError == decodeErrorAbort {
				closeSink(sink)
				return 0, fmt.Errorf("frame %d: cannot decode %s", frameNum, ff.Path)
			}
			warnMsg("RENDER", "frame %d: cannot decode %s, skipping", frameNum, ff.Path)
			stats.frameSkipped()
			continue
		}

		if sink == nil {
			width, height := img.Cols(), img.Rows()
			sink, err = video.OpenSink(cfg.OutputPath, float64(cfg.FPS), width, height)
			if err != nil {
				img.Close()
				return 0, err
			}
			logMsg("SINK", "writing %dx%d @ %d fps to %s", width, height, cfg.FPS, cfg.OutputPath)
		}

		renderer.Draw(&img, records.ByFrame(frameNum))

		err = sink.Append(img)
		img.Close()
		if err != nil {
			if errors.Is(err, video.ErrDimensionMismatch) && cfg.OnDecodeError == decodeErrorSkip {
				warnMsg("RENDER", "frame %d: %v, skipping", frameNum, err)
				stats.frameSkipped()
				continue
			}
			closeSink(sink)
			return 0, fmt.Errorf("frame %d: %w", frameNum, err)
		}
		stats.frameDone()
		stats.maybeReport()
	}

	if sink == nil {
		return 0, fmt.Errorf("no frame in %s could be decoded", cfg.ImgDir)
	}
	written := sink.Written()
	if err := sink.Close(); err != nil {
		warnMsg("SINK", "closing encoder: %v", err)
	}
	stats.final()

	status, size := video.Verify(cfg.OutputPath)
	switch status {
	case video.StatusSuccess:
		logMsg("SINK", "done: %s (%d frames, %.2f KB)", cfg.OutputPath, written, float64(size)/1024.0)
	case video.StatusEmptyOutput:
		warnMsg("SINK", "%s was created but is 0 bytes; the encoder likely failed", cfg.OutputPath)
	case video.StatusMissingOutput:
		warnMsg("SINK", "%s is missing after close; the video was not written", cfg.OutputPath)
	}
	return status, nil
}

func closeSink(s *video.Sink) {
	if s == nil {
		return
	}
	// Partial output is left on disk for inspection.
	if err := s.Close(); err != nil {
		warnMsg("SINK", "closing encoder: %v", err)
	}
}
