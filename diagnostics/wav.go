package diagnostics

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/vectrexcore/vectrexcore/curated"
	"github.com/vectrexcore/vectrexcore/logger"
)

// WavSink buffers PSG samples in memory and writes them to a WAV file on
// Close. Grounded on the teacher's wavwriter package (buffer-everything,
// flush-on-EndMixing), adapted to the go-audio/audio + go-audio/wav
// libraries instead of youpy/go-wav, since PSG samples arrive as floats
// rather than the teacher's packed television signal attributes.
type WavSink struct {
	path       string
	sampleRate int
	samples    []int
}

// NewWavSink returns a sink that will write to path once Close is called.
func NewWavSink(path string, sampleRate int) *WavSink {
	return &WavSink{path: path, sampleRate: sampleRate}
}

// Append adds PSG samples (in the [-1, 1] range) to the buffer, scaling
// them to 16-bit signed PCM.
func (s *WavSink) Append(samples []float32) {
	for _, v := range samples {
		scaled := int(v * 32767)
		if scaled > 32767 {
			scaled = 32767
		} else if scaled < -32768 {
			scaled = -32768
		}
		s.samples = append(s.samples, scaled)
	}
}

// Close writes every buffered sample to path as a mono 16-bit WAV file.
func (s *WavSink) Close() (rerr error) {
	f, err := os.Create(s.path)
	if err != nil {
		return curated.Errorf("diagnostics: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("diagnostics: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, s.sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: s.sampleRate},
		Data:           s.samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return curated.Errorf("diagnostics: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("diagnostics: %v", err)
	}

	logger.Logf(logger.Allow, "diagnostics", "wrote %d audio samples to %s", len(s.samples), s.path)
	return nil
}
