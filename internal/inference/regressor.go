package inference

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Regressor is a standard-scaled linear regression model. It predicts a
// single value from a named feature map; the artifact fixes the feature
// order and scaling.
type Regressor struct {
	artifact RegressorArtifact
	coef     *mat.VecDense
}

func NewRegressor(a RegressorArtifact) *Regressor {
	return &Regressor{
		artifact: a,
		coef:     mat.NewVecDense(len(a.Coefficients), a.Coefficients),
	}
}

// Predict computes intercept + coef . scale(x). Missing features are an
// error: the HTTP layer binds every field, so a miss means the artifact
// and request schema disagree.
func (r *Regressor) Predict(features map[string]float64) (float64, error) {
	x, err := r.vectorize(features)
	if err != nil {
		return 0, err
	}
	y := mat.Dot(r.coef, x) + r.artifact.Intercept
	if c := r.artifact.Clamp; c != nil {
		if y < c.Min {
			y = c.Min
		}
		if y > c.Max {
			y = c.Max
		}
	}
	return y, nil
}

// PredictBatch scores many feature maps in one matrix multiply.
func (r *Regressor) PredictBatch(rows []map[string]float64) ([]float64, error) {
	n := len(rows)
	if n == 0 {
		return nil, nil
	}
	p := len(r.artifact.Features)
	X := mat.NewDense(n, p, nil)
	for i, row := range rows {
		x, err := r.vectorize(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		X.SetRow(i, x.RawVector().Data)
	}
	var y mat.VecDense
	y.MulVec(X, r.coef)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v := y.AtVec(i) + r.artifact.Intercept
		if c := r.artifact.Clamp; c != nil {
			if v < c.Min {
				v = c.Min
			}
			if v > c.Max {
				v = c.Max
			}
		}
		out[i] = v
	}
	return out, nil
}

// Features returns the model's input feature names in artifact order.
func (r *Regressor) Features() []string {
	return r.artifact.Features
}

func (r *Regressor) vectorize(features map[string]float64) (*mat.VecDense, error) {
	return vectorize(features, r.artifact.Features, r.artifact.Scaler)
}

// vectorize orders, then standardizes, a named feature map.
func vectorize(features map[string]float64, order []string, scaler ScalerArtifact) (*mat.VecDense, error) {
	x := mat.NewVecDense(len(order), nil)
	for i, name := range order {
		v, ok := features[name]
		if !ok {
			return nil, fmt.Errorf("missing feature %q", name)
		}
		x.SetVec(i, (v-scaler.Mean[i])/scaler.Std[i])
	}
	return x, nil
}
