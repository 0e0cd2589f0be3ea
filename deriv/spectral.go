package deriv

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/structgrid/derivops/grid"
)

// fftFilter attenuates coefficients above this fraction of the z mode
// range to keep aliased high-frequency content from feeding back.
const (
	fftFilter    = 0.4
	fftFilterAmp = 1.0e-10
)

// fftScratch is one worker's transform state: the real FFT plan over
// the Ncz distinct z samples plus reusable line and coefficient
// buffers. Workers index their own slot, so no locking is needed.
type fftScratch struct {
	fft  *fourier.FFT
	line []float64
	cv   []complex128
}

func newFFTScratch(nworkers, ncz int) []fftScratch {
	ws := make([]fftScratch, nworkers)
	for i := range ws {
		ws[i] = fftScratch{
			fft:  fourier.NewFFT(ncz),
			line: make([]float64, ncz),
			cv:   make([]complex128, ncz/2+1),
		}
	}
	return ws
}

// applyZFFT computes an order-1 or order-2 z derivative spectrally:
// forward transform of each pencil, multiply mode k by (i*k)^order,
// inverse transform. shift of +1 or -1 applies the staggered half-cell
// phase factor (centre -> ZLow or back); 0 leaves the phase alone.
// The duplicated wrap point of each output pencil is filled from jz=0.
func (ops *Operators) applyZFFT(f *grid.Field3D, order int, shift float64, xs, xe int) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
		oon    = 1.0 / float64(ncz)
	)
	ops.runXY(xs, xe, 0, m.Ngy-1, func(w, jx, jy int) {
		sc := &ops.fftWork[w]
		copy(sc.line, f.ZLine(jx, jy)[:ncz])
		sc.fft.Coefficients(sc.cv, sc.line)

		for jz := 0; jz <= ncz/2; jz++ {
			kwave := float64(jz) * 2.0 * math.Pi / m.ZLength

			flt := 1.0
			if float64(jz) > fftFilter*float64(ncz) {
				flt = fftFilterAmp
			}
			var mult complex128
			switch order {
			case 1:
				mult = complex(0, kwave)
			default:
				mult = complex(-kwave*kwave, 0)
			}
			sc.cv[jz] *= mult * complex(flt, 0)
			if m.StaggerGrids && shift != 0 {
				sc.cv[jz] *= cmplx.Exp(complex(0, shift*kwave*0.5*m.Dz))
			}
		}

		out := result.ZLine(jx, jy)
		sc.fft.Sequence(out[:ncz], sc.cv)
		for jz := 0; jz < ncz; jz++ {
			out[jz] *= oon
		}
		out[ncz] = out[0]
	})
	return result
}
