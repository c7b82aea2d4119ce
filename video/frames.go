package video

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNoFrames means the image directory exists but holds no .jpg files.
var ErrNoFrames = errors.New("no .jpg frames in directory")

// FrameFile is one image of the input sequence.
type FrameFile struct {
	Path string
	Stem int // integer value of the filename stem, used only for ordering
}

// ListFrames returns the .jpg files of dir sorted by the integer value of
// their filename stem, so 10.jpg follows 2.jpg. The first entry corresponds
// to frame number 1 regardless of gaps in the numbering. A .jpg whose stem
// is not numeric is a fatal input error.
func ListFrames(dir string) ([]FrameFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image directory %s: %w", dir, err)
	}

	var frames []FrameFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jpg") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ".jpg")
		n, err := strconv.Atoi(stem)
		if err != nil {
			return nil, fmt.Errorf("image %s: filename stem %q is not numeric", filepath.Join(dir, e.Name()), stem)
		}
		frames = append(frames, FrameFile{Path: filepath.Join(dir, e.Name()), Stem: n})
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, dir)
	}

	sort.Slice(frames, func(i, j int) bool { return frames[i].Stem < frames[j].Stem })
	return frames, nil
}
