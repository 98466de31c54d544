package pitch

import (
	"math"

	"github.com/jsphweid/chordsense/audio"
	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/model"
)

// Estimator finds the fundamental frequency of a frame by time-domain
// autocorrelation. The zero value is unusable; use NewEstimator.
type Estimator struct {
	MinFrequency  float64
	MaxFrequency  float64
	SilenceRMS    float64
	PeakFloor     float64 // fraction of r[0] a peak must clear
	MinConfidence float64
}

func NewEstimator() *Estimator {
	return &Estimator{
		MinFrequency:  constants.MinFrequency,
		MaxFrequency:  constants.MaxFrequency,
		SilenceRMS:    constants.SilenceRMSFloor,
		PeakFloor:     constants.PeakFloorRatio,
		MinConfidence: constants.MinEstimateConfidence,
	}
}

// Estimate returns nil when the frame is silence or no credible pitch is
// found. Identical frames always produce identical results.
func (e *Estimator) Estimate(frame audio.Frame) *model.PitchEstimate {
	n := len(frame.Samples)
	if n == 0 || frame.SampleRate <= 0 {
		return nil
	}

	var sumSquares, maxAbs float64
	for _, s := range frame.Samples {
		sumSquares += s * s
		if a := math.Abs(s); a > maxAbs {
			maxAbs = a
		}
	}
	rms := math.Sqrt(sumSquares / float64(n))
	if rms < e.SilenceRMS || maxAbs == 0 {
		return nil
	}

	norm := make([]float64, n)
	for i, s := range frame.Samples {
		norm[i] = s / maxAbs
	}

	// r[lag] = Σ x[i]·x[i+lag]. Only lags up to n/2 can be picked, so stop
	// there; still O(N²) at the fixed frame size, which is fine.
	half := n / 2
	r := make([]float64, half+1)
	for lag := 0; lag <= half; lag++ {
		var sum float64
		for i := 0; i+lag < n; i++ {
			sum += norm[i] * norm[i+lag]
		}
		r[lag] = sum
	}
	if r[0] <= 0 {
		return nil
	}

	// A usable peak clears the floor and is a strict local maximum. First
	// hit wins on exact value ties.
	floor := r[0] * e.PeakFloor
	bestLag := 0
	var bestVal float64
	for lag := 2; lag < half; lag++ {
		v := r[lag]
		if v <= floor || v <= r[lag-1] || v <= r[lag+1] {
			continue
		}
		if bestLag == 0 || v > bestVal {
			bestLag = lag
			bestVal = v
		}
	}
	if bestLag == 0 {
		return nil
	}

	frequency := frame.SampleRate / float64(bestLag)
	confidence := math.Min(1, bestVal/r[0])
	if frequency < e.MinFrequency || frequency > e.MaxFrequency {
		return nil
	}
	if confidence <= e.MinConfidence {
		return nil
	}

	return &model.PitchEstimate{Frequency: frequency, Confidence: confidence}
}
