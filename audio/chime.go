package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

type Note struct {
	Frequency float64
	Duration  time.Duration
}

// Rising major arpeggio
var FinishMelody = []Note{
	{Frequency: 523.25, Duration: 90 * time.Millisecond},
	{Frequency: 659.25, Duration: 90 * time.Millisecond},
	{Frequency: 783.99, Duration: 90 * time.Millisecond},
	{Frequency: 1046.50, Duration: 180 * time.Millisecond},
}

// Chime plays a short melody when a maze is finished. A Chime whose speaker
// could not be opened stays silent.
type Chime struct {
	enabled bool
	melody  []Note
}

func NewChime(enabled bool) *Chime {
	chime := &Chime{melody: FinishMelody}
	if !enabled {
		return chime
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game can run without sound
		logrus.WithError(err).Warn("Audio initialization failed")
		return chime
	}

	chime.enabled = true
	return chime
}

func (chime *Chime) Enabled() bool {
	return chime.enabled
}

func (chime *Chime) Play() {
	if !chime.enabled {
		return
	}

	streamer, err := Melody(sampleRate, chime.melody)
	if err != nil {
		logrus.WithError(err).Warn("Could not build chime")
		return
	}
	speaker.Play(streamer)
}

func (chime *Chime) Close() {
	if chime.enabled {
		speaker.Close()
		chime.enabled = false
	}
}

// Melody strings sine tones together, one per note.
func Melody(sr beep.SampleRate, notes []Note) (beep.Streamer, error) {
	tones := make([]beep.Streamer, 0, len(notes))
	for _, note := range notes {
		sine, err := generators.SineTone(sr, note.Frequency)
		if err != nil {
			return nil, err
		}
		tones = append(tones, beep.Take(sr.N(note.Duration), sine))
	}
	return beep.Seq(tones...), nil
}
