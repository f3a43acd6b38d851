// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"math"

	"github.com/ik5/speechpcm/audio"
)

// Example_resample converts one second of a 44.1kHz tone to 16kHz.
func Example_resample() {
	in := make([]float32, 44100)
	for i := range in {
		in[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/44100))
	}

	out, err := audio.Resample(in, 44100, 16000)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Input: %d frames at 44100 Hz\n", len(in))
	fmt.Printf("Output: %d frames at 16000 Hz\n", len(out))
	// Output:
	// Input: 44100 frames at 44100 Hz
	// Output: 16000 frames at 16000 Hz
}

// Example_mixToMono averages a stereo signal into one channel.
func Example_mixToMono() {
	stereo := []float32{0.4, 0.6, -0.2, 0.2, 1.0, 0.0}

	mono := audio.MixToMono(stereo, 2)

	fmt.Println(mono)
	// Output: [0.5 0 0.5]
}

// Example_target shows how a probed format is compared with the output
// format.
func Example_target() {
	f := audio.Format{
		Container:     audio.ContainerWAV,
		SampleRate:    44100,
		Channels:      2,
		BitsPerSample: 24,
		Encoding:      audio.Integer,
	}

	fmt.Println(f)
	fmt.Println(f.IsTarget())
	fmt.Println(audio.Target.IsTarget())
	// Output:
	// wav 44100Hz 2ch 24-bit int
	// false
	// true
}
