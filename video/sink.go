package video

import (
	"errors"
	"fmt"
	"os"

	"gocv.io/x/gocv"
)

// fourcc of the fixed mp4 output codec.
const codec = "mp4v"

// Status classifies the output artifact after the stream is closed.
type Status int

const (
	// StatusSuccess means the file exists and is non-empty.
	StatusSuccess Status = iota
	// StatusEmptyOutput means the file exists but is zero bytes, which
	// signals an encoder failure.
	StatusEmptyOutput
	// StatusMissingOutput means the file is absent after close.
	StatusMissingOutput
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusEmptyOutput:
		return "empty output"
	case StatusMissingOutput:
		return "missing output"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ErrDimensionMismatch is returned by Append when a frame does not match
// the dimensions the sink was opened with.
var ErrDimensionMismatch = errors.New("frame dimensions differ from output stream")

// Sink owns the encoder and destination file for one run. Frames must be
// appended in playback order; there is no reordering or timestamp logic.
type Sink struct {
	writer  *gocv.VideoWriter
	path    string
	width   int
	height  int
	written int
}

// OpenSink creates the mp4 writer. Dimensions are fixed for the life of
// the stream.
func OpenSink(path string, fps float64, width, height int) (*Sink, error) {
	w, err := gocv.VideoWriterFile(path, codec, fps, width, height, true)
	if err != nil {
		return nil, fmt.Errorf("open video writer %s: %w", path, err)
	}
	if !w.IsOpened() {
		w.Close()
		return nil, fmt.Errorf("open video writer %s: encoder rejected %s %dx%d", path, codec, width, height)
	}
	return &Sink{writer: w, path: path, width: width, height: height}, nil
}

// Append encodes one frame. Frames whose size differs from the opened
// stream are rejected rather than written as garbage.
func (s *Sink) Append(frame gocv.Mat) error {
	if frame.Cols() != s.width || frame.Rows() != s.height {
		return fmt.Errorf("%w: got %dx%d, stream is %dx%d",
			ErrDimensionMismatch, frame.Cols(), frame.Rows(), s.width, s.height)
	}
	if err := s.writer.Write(frame); err != nil {
		return fmt.Errorf("write frame to %s: %w", s.path, err)
	}
	s.written++
	return nil
}

// Written returns the number of frames appended so far.
func (s *Sink) Written() int { return s.written }

// Close finalizes the encoder. The artifact is not trustworthy until
// Verify has been run on it.
func (s *Sink) Close() error { return s.writer.Close() }

// Verify reports whether the artifact at path actually landed on disk,
// and its size in bytes when it did.
func Verify(path string) (Status, int64) {
	info, err := os.Stat(path)
	if err != nil {
		return StatusMissingOutput, 0
	}
	if info.Size() == 0 {
		return StatusEmptyOutput, 0
	}
	return StatusSuccess, info.Size()
}
