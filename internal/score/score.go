package score

// #region types

// Matrix holds the coefficients that turn a choice vector into ending scores.
// Rows are ordered {bad, bad-relationship, good, normal}.
type Matrix [4][3]float64

// Choices is the player's decisive 3-value input.
type Choices [3]float64

// Vector is the per-ending score produced by Score.
type Vector [4]float64

// #endregion types

// #region score

// Score computes the matrix-vector product m·c. Each row is summed left to right.
func Score(m Matrix, c Choices) Vector {
	var v Vector
	for i, row := range m {
		var sum float64
		for j, coef := range row {
			sum += coef * c[j]
		}
		v[i] = sum
	}
	return v
}

// #endregion score

// #region arithmetic

// Add returns the element-wise sum c + o.
func (c Choices) Add(o Choices) Choices {
	for i := range c {
		c[i] += o[i]
	}
	return c
}

// Scale returns c multiplied by k.
func (c Choices) Scale(k float64) Choices {
	for i := range c {
		c[i] *= k
	}
	return c
}

// Add returns the element-wise sum v + o.
func (v Vector) Add(o Vector) Vector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	for i := range v {
		v[i] *= k
	}
	return v
}

// #endregion arithmetic
