package harmonics

// Order0Grid is Order0 evaluated over a Grid.
type Order0Grid struct {
	W []float64 `json:"W"`
}

// Order1Grid is Order1 evaluated over a Grid.
type Order1Grid struct {
	X []float64 `json:"X"`
	Y []float64 `json:"Y"`
	Z []float64 `json:"Z"`
}

// Order2Grid is Order2 evaluated over a Grid.
type Order2Grid struct {
	V []float64 `json:"V"`
	T []float64 `json:"T"`
	R []float64 `json:"R"`
	S []float64 `json:"S"`
	U []float64 `json:"U"`
}

// Order3Grid is Order3 evaluated over a Grid.
type Order3Grid struct {
	Q []float64 `json:"Q"`
	O []float64 `json:"O"`
	M []float64 `json:"M"`
	K []float64 `json:"K"`
	L []float64 `json:"L"`
	N []float64 `json:"N"`
	P []float64 `json:"P"`
}

func (c Order0Grid) Components() [][]float64 { return [][]float64{c.W} }
func (c Order1Grid) Components() [][]float64 { return [][]float64{c.X, c.Y, c.Z} }
func (c Order2Grid) Components() [][]float64 {
	return [][]float64{c.V, c.T, c.R, c.S, c.U}
}
func (c Order3Grid) Components() [][]float64 {
	return [][]float64{c.Q, c.O, c.M, c.K, c.L, c.N, c.P}
}

func columns(n, k int) [][]float64 {
	cols := make([][]float64, k)
	for i := range cols {
		cols[i] = make([]float64, n)
	}
	return cols
}

// EvalOrder0Grid returns W over g. Its length follows the broadcasting rule
// of Grid.Len.
func EvalOrder0Grid(g Grid) (Order0Grid, error) {
	n, err := g.Len()
	if err != nil {
		return Order0Grid{}, err
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return Order0Grid{W: w}, nil
}

// EvalOrder1Grid returns X, Y, Z over g.
func EvalOrder1Grid(g Grid) (Order1Grid, error) {
	n, err := g.Len()
	if err != nil {
		return Order1Grid{}, err
	}
	c := columns(n, 3)
	out := Order1Grid{X: c[0], Y: c[1], Z: c[2]}
	for i := 0; i < n; i++ {
		v := EvalOrder1(g.At(i))
		out.X[i], out.Y[i], out.Z[i] = v.X, v.Y, v.Z
	}
	return out, nil
}

// EvalOrder2Grid returns V, T, R, S, U over g.
func EvalOrder2Grid(g Grid) (Order2Grid, error) {
	n, err := g.Len()
	if err != nil {
		return Order2Grid{}, err
	}
	c := columns(n, 5)
	out := Order2Grid{V: c[0], T: c[1], R: c[2], S: c[3], U: c[4]}
	for i := 0; i < n; i++ {
		v := EvalOrder2(g.At(i))
		out.V[i], out.T[i], out.R[i], out.S[i], out.U[i] = v.V, v.T, v.R, v.S, v.U
	}
	return out, nil
}

// EvalOrder3Grid returns Q, O, M, K, L, N, P over g.
func EvalOrder3Grid(g Grid) (Order3Grid, error) {
	n, err := g.Len()
	if err != nil {
		return Order3Grid{}, err
	}
	c := columns(n, 7)
	out := Order3Grid{Q: c[0], O: c[1], M: c[2], K: c[3], L: c[4], N: c[5], P: c[6]}
	for i := 0; i < n; i++ {
		v := EvalOrder3(g.At(i))
		out.Q[i], out.O[i], out.M[i], out.K[i] = v.Q, v.O, v.M, v.K
		out.L[i], out.N[i], out.P[i] = v.L, v.N, v.P
	}
	return out, nil
}

// GridCoefficients is the full third-order encoding of every direction in a
// Grid. Each component slice has the grid's length.
type GridCoefficients struct {
	Order0 Order0Grid `json:"order0"`
	Order1 Order1Grid `json:"order1"`
	Order2 Order2Grid `json:"order2"`
	Order3 Order3Grid `json:"order3"`
}

// EncodeGrid evaluates all four orders over g.
func EncodeGrid(g Grid) (GridCoefficients, error) {
	var (
		out GridCoefficients
		err error
	)
	if out.Order0, err = EvalOrder0Grid(g); err != nil {
		return GridCoefficients{}, err
	}
	if out.Order1, err = EvalOrder1Grid(g); err != nil {
		return GridCoefficients{}, err
	}
	if out.Order2, err = EvalOrder2Grid(g); err != nil {
		return GridCoefficients{}, err
	}
	if out.Order3, err = EvalOrder3Grid(g); err != nil {
		return GridCoefficients{}, err
	}
	return out, nil
}

// Len returns the number of directions encoded.
func (c GridCoefficients) Len() int {
	return len(c.Order0.W)
}

// Order returns the component arrays of order o, or nil if o is unsupported.
func (c GridCoefficients) Order(o Order) [][]float64 {
	switch o {
	case Zero:
		return c.Order0.Components()
	case First:
		return c.Order1.Components()
	case Second:
		return c.Order2.Components()
	case Third:
		return c.Order3.Components()
	default:
		return nil
	}
}

// Flat returns the sixteen component arrays in the Coefficients.Flat layout.
// The arrays are shared with c, not copied.
func (c GridCoefficients) Flat() [NumComponents][]float64 {
	var out [NumComponents][]float64
	for _, o := range Orders {
		copy(out[o.Offset():], c.Order(o))
	}
	return out
}
