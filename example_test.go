// SPDX-License-Identifier: EPL-2.0

package speechpcm_test

import (
	"context"
	"fmt"

	"github.com/ik5/speechpcm"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/wav"
	"github.com/ik5/speechpcm/internal/audiotest"
)

// Example converts one second of 44.1 kHz stereo into the target format.
func Example() {
	in := audiotest.PCM16(44100, 2, audiotest.Interleave(
		audiotest.Sine(44100, 44100, 440, 0.5),
		audiotest.Sine(44100, 44100, 440, 0.5),
	))

	out, err := speechpcm.NewConverter().Convert(context.Background(), in)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	f, _ := wav.Detect(out)
	buf, _ := wav.Decode(out, f)
	fmt.Println("Format:", f)
	fmt.Println("Frames:", buf.Frames())
	// Output:
	// Format: wav 16000Hz 1ch 16-bit int
	// Frames: 16000
}

// Example_passthrough shows that target-format input is not touched.
func Example_passthrough() {
	in, _ := wav.Encode(audiotest.Sine(16000, 160, 440, 0.5), 16000, 1)

	out, _ := speechpcm.NewConverter().Convert(context.Background(), in)
	fmt.Println("Same slice:", &out[0] == &in[0])
	// Output:
	// Same slice: true
}

func ExampleNewPlan() {
	p := speechpcm.NewPlan(audio.Format{
		Container:     audio.ContainerWAV,
		SampleRate:    44100,
		Channels:      2,
		BitsPerSample: 24,
		Encoding:      audio.Integer,
	})

	fmt.Printf("mix=%v resample=%v requantize=%v rewrap=%v\n",
		p.NeedsMix, p.NeedsResample, p.NeedsRequantize, p.NeedsRewrap)
	// Output:
	// mix=true resample=true requantize=true rewrap=false
}
