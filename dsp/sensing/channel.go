package sensing

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/cmplxs"

	"github.com/cwbudde/algo-sensing/dsp/tensor"
)

// ChannelOperator applies a [FourierWavelet] to real tensors that carry
// real and imaginary parts in a trailing axis of size 2. Accepted shapes
// are [h, w, 2] and [b, h, w, 2]; batch items are transformed
// independently. The wavelet stages run on each channel separately, only
// the Fourier stage sees complex data.
type ChannelOperator struct {
	op      *FourierWavelet
	weights []float64
}

// NewChannelOperator wraps op for two-channel real tensors.
func NewChannelOperator(op *FourierWavelet) *ChannelOperator {
	return &ChannelOperator{op: op, weights: op.mask.channelWeights()}
}

// Operator returns the wrapped complex operator.
func (c *ChannelOperator) Operator() *FourierWavelet { return c.op }

// Forward computes P F W* per batch item.
func (c *ChannelOperator) Forward(x *tensor.Dense[float64]) (*tensor.Dense[float64], error) {
	return c.each(x, c.forwardItem)
}

// Adjoint computes W F* P per batch item.
func (c *ChannelOperator) Adjoint(y *tensor.Dense[float64]) (*tensor.Dense[float64], error) {
	return c.each(y, c.adjointItem)
}

func (c *ChannelOperator) each(x *tensor.Dense[float64], fn func(dst, src []float64, ws *workspace) error) (*tensor.Dense[float64], error) {
	batch, err := c.batch(x)
	if err != nil {
		return nil, err
	}

	ws := c.op.pool.Get().(*workspace)
	defer c.op.pool.Put(ws)

	out := tensor.ZerosLike[float64](x)
	src, dst := x.Data(), out.Data()
	stride := 2 * c.op.rows * c.op.cols
	for b := 0; b < batch; b++ {
		if err := fn(dst[b*stride:(b+1)*stride], src[b*stride:(b+1)*stride], ws); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *ChannelOperator) batch(x *tensor.Dense[float64]) (int, error) {
	shape := x.Shape()
	if len(shape) < 3 || len(shape) > 4 || shape[len(shape)-1] != 2 {
		return 0, fmt.Errorf("%w: want [h, w, 2] or [b, h, w, 2], got %v", ErrShape, shape)
	}
	h, w := shape[len(shape)-3], shape[len(shape)-2]
	if h != c.op.rows || w != c.op.cols {
		return 0, fmt.Errorf("%w: spatial shape %dx%d, operator %dx%d", ErrShape, h, w, c.op.rows, c.op.cols)
	}
	if len(shape) == 4 {
		return shape[0], nil
	}
	return 1, nil
}

func (c *ChannelOperator) forwardItem(dst, src []float64, ws *workspace) error {
	z, err := c.complexItem(src)
	if err != nil {
		return err
	}

	tensor.Split(ws.re, ws.im, z.Data())
	if err := c.op.synthesize(ws.re, ws.im); err != nil {
		return err
	}
	tensor.Join(z.Data(), ws.re, ws.im)
	if err := ws.plan.Forward(z.Data(), z.Data()); err != nil {
		return fmt.Errorf("sensing: %w", err)
	}

	ch := tensor.ToChannels(z)
	vecmath.ScaleBlock(dst, ch.Data(), 1/c.op.scale)
	vecmath.MulBlockInPlace(dst, c.weights)
	return nil
}

func (c *ChannelOperator) adjointItem(dst, src []float64, ws *workspace) error {
	masked := make([]float64, len(src))
	vecmath.MulBlock(masked, src, c.weights)

	z, err := c.complexItem(masked)
	if err != nil {
		return err
	}
	if err := ws.plan.Inverse(z.Data(), z.Data()); err != nil {
		return fmt.Errorf("sensing: %w", err)
	}
	cmplxs.Scale(complex(c.op.scale, 0), z.Data())

	tensor.Split(ws.re, ws.im, z.Data())
	if err := c.op.analyze(ws.re, ws.im); err != nil {
		return err
	}
	tensor.Join(z.Data(), ws.re, ws.im)
	copy(dst, tensor.ToChannels(z).Data())
	return nil
}

func (c *ChannelOperator) complexItem(data []float64) (*tensor.Dense[complex128], error) {
	item, err := tensor.FromSlice(data, c.op.rows, c.op.cols, 2)
	if err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	z, err := tensor.ToComplex(item)
	if err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	return z, nil
}
