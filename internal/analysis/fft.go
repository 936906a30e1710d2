// Package analysis provides spectral tools for recorded runs.
//
// The analyze command uses [DominantFrequency] to recover the damped
// oscillation frequency from a position trace and compare it against
// the analytic omega_d/2π.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT lifts a real-valued trace into the frequency domain. The length
// must be a power of two; callers zero-pad (see DominantFrequency).
func FFT(data []float64) []complex128 {
	buf := make([]complex128, len(data))
	for i, v := range data {
		buf[i] = complex(v, 0)
	}
	transform(buf)
	return buf
}

// transform is an in-place radix-2 decimation-in-time butterfly.
func transform(buf []complex128) {
	n := len(buf)
	if n < 2 {
		return
	}
	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = buf[2*i]
		odd[i] = buf[2*i+1]
	}
	transform(even)
	transform(odd)

	step := -2 * math.Pi / float64(n)
	for k := 0; k < half; k++ {
		twiddled := cmplx.Exp(complex(0, step*float64(k))) * odd[k]
		buf[k] = even[k] + twiddled
		buf[k+half] = even[k] - twiddled
	}
}

// PowerSpectrum returns the magnitude of each non-mirrored frequency
// bin of the trace.
func PowerSpectrum(data []float64) []float64 {
	coeffs := FFT(data)
	mags := make([]float64, len(coeffs)/2)
	for i := range mags {
		mags[i] = cmplx.Abs(coeffs[i])
	}
	return mags
}

// DominantFrequency zero-pads the trace to a power of two, takes the
// power spectrum and returns the peak bin as a frequency in Hz. The DC
// bin is skipped. sampleRate is samples per second.
func DominantFrequency(data []float64, sampleRate float64) float64 {
	if len(data) < 2 || sampleRate <= 0 {
		return 0
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := PowerSpectrum(padded)
	peak, best := 0, 0.0
	for i := 1; i < len(spectrum); i++ {
		if spectrum[i] > best {
			peak, best = i, spectrum[i]
		}
	}
	return float64(peak) * sampleRate / float64(n)
}
