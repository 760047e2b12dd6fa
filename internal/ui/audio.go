package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundFlip
	SoundInvalid
)

const (
	sampleRate = 44100
)

// AudioManager plays short procedural sound effects. A nil *AudioManager is
// silent.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	volume  float64
}

// NewAudioManager creates the audio context. Only one may exist per process.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		volume:  0.5,
	}
	am.sounds[SoundMove] = generateClick(440, 0.08, 0.3)
	am.sounds[SoundFlip] = generateDoubleClick(400, 0.06, 0.3)
	am.sounds[SoundInvalid] = generateBuzz(150, 0.1, 0.3)
	return am
}

// putSample writes one 16-bit stereo frame.
func putSample(data []byte, i int, sample float64) {
	val := int16(math.Max(-1, math.Min(1, sample)) * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// generateClick creates a short percussive click sound.
func generateClick(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		// Some noise for wood texture
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		putSample(data, i, (math.Sin(2*math.Pi*freq*t)+noise)*envelope*amplitude)
	}
	return data
}

// generateDoubleClick creates two quick clicks.
func generateDoubleClick(freq, duration, amplitude float64) []byte {
	click1 := generateClick(freq, duration, amplitude)
	silence := make([]byte, int(sampleRate*0.05)*4)
	click2 := generateClick(freq*1.1, duration, amplitude*0.8)

	result := make([]byte, 0, len(click1)+len(silence)+len(click2))
	result = append(result, click1...)
	result = append(result, silence...)
	return append(result, click2...)
}

// generateBuzz creates a low error buzz.
func generateBuzz(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := 1.0 - t/duration
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		putSample(data, i, wave*envelope*amplitude*0.5)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A new player per call lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}
