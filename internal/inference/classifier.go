package inference

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ClassPrediction is the result of a single classifier call.
type ClassPrediction struct {
	Class         string
	Confidence    float64
	DaysUntil     int
	Probabilities map[string]float64
}

// Classifier is a standard-scaled multinomial logistic model.
type Classifier struct {
	artifact ClassifierArtifact
	// weights is classes x features; intercepts is one per class.
	weights    *mat.Dense
	intercepts []float64
}

func NewClassifier(a ClassifierArtifact) *Classifier {
	k, p := len(a.Classes), len(a.Features)
	w := mat.NewDense(k, p, nil)
	b := make([]float64, k)
	for i, c := range a.Classes {
		w.SetRow(i, c.Coefficients)
		b[i] = c.Intercept
	}
	return &Classifier{artifact: a, weights: w, intercepts: b}
}

// Predict computes softmax class probabilities and picks the argmax.
// DaysUntil is the midpoint of the winning class's labeled day range.
func (c *Classifier) Predict(features map[string]float64) (ClassPrediction, error) {
	x, err := vectorize(features, c.artifact.Features, c.artifact.Scaler)
	if err != nil {
		return ClassPrediction{}, err
	}

	k := len(c.artifact.Classes)
	logits := make([]float64, k)
	var z mat.VecDense
	z.MulVec(c.weights, x)
	for i := 0; i < k; i++ {
		logits[i] = z.AtVec(i) + c.intercepts[i]
	}

	// Softmax with max subtraction for numerical stability.
	maxLogit := floats.Max(logits)
	probs := make([]float64, k)
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
	}
	floats.Scale(1/floats.Sum(probs), probs)

	best := floats.MaxIdx(probs)
	win := c.artifact.Classes[best]

	byName := make(map[string]float64, k)
	for i, cls := range c.artifact.Classes {
		byName[cls.Name] = probs[i]
	}

	return ClassPrediction{
		Class:         win.Name,
		Confidence:    probs[best],
		DaysUntil:     (win.DaysUntil[0] + win.DaysUntil[1]) / 2,
		Probabilities: byName,
	}, nil
}

// Classes returns the class names in artifact order.
func (c *Classifier) Classes() []string {
	names := make([]string, len(c.artifact.Classes))
	for i, cls := range c.artifact.Classes {
		names[i] = cls.Name
	}
	return names
}
