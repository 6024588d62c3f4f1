package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/lixenwraith/geometry-fighter/core"
)

// resampleQuality is the beep.Resample quality used for wav files recorded at another rate
const resampleQuality = 4

// overridePath returns the wav file that replaces the procedural cue
func overridePath(dir string, cue core.Cue) string {
	return filepath.Join(dir, cue.String()+".wav")
}

// loadOverride decodes <dir>/<Cue>.wav into memory, resampled to rate
// A missing file returns an error satisfying errors.Is(err, fs.ErrNotExist)
func loadOverride(dir string, cue core.Cue, rate beep.SampleRate) (*beep.Buffer, error) {
	path := overridePath(dir, cue)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("read %s: no samples", path)
	}
	return buf, nil
}
