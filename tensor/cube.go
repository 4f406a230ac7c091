package tensor

import "gonum.org/v1/gonum/mat"

// internal float64 probability cube representation
type Cube struct {
	items   int
	passes  int
	classes int
	data    []float64
}

// NewCube creates a new Cube holding one probability matrix of passes rows
// and classes columns per item. A float64 slice is used as the underlying
// storage and the data layout is in row major order, i.e. the
// ((b*passes+k)*classes + c)-th element in the data slice is the [b, k, c]-th
// element of the cube. If data is nil a zeroed slice is allocated, otherwise
// its length must be items*passes*classes. A cube may hold zero items but
// never zero passes or classes.
func NewCube(items, passes, classes int, data []float64) *Cube {
	if items < 0 || passes <= 0 || classes <= 0 {
		panic(ErrBadShape)
	}
	if data == nil {
		data = make([]float64, items*passes*classes)
	}
	if len(data) != items*passes*classes {
		panic(ErrBadShape)
	}
	return &Cube{
		items:   items,
		passes:  passes,
		classes: classes,
		data:    data,
	}
}

// get the shape of the cube
func (m *Cube) Shape() (int, int, int) {
	return m.items, m.passes, m.classes
}

// get the [b, k, c]-th element of the cube
func (m *Cube) Get(b, k, c int) float64 {
	if b < 0 || b >= m.items || k < 0 || k >= m.passes || c < 0 || c >= m.classes {
		panic(ErrIndexOutOfRange)
	}
	return m.data[(b*m.passes+k)*m.classes+c]
}

// set val to the [b, k, c]-th element of the cube
func (m *Cube) Set(b, k, c int, val float64) {
	if b < 0 || b >= m.items || k < 0 || k >= m.passes || c < 0 || c >= m.classes {
		panic(ErrIndexOutOfRange)
	}
	m.data[(b*m.passes+k)*m.classes+c] = val
}

// Row returns the class distribution of pass k of item b.
// The slice shares the cube's storage.
func (m *Cube) Row(b, k int) []float64 {
	if b < 0 || b >= m.items || k < 0 || k >= m.passes {
		panic(ErrIndexOutOfRange)
	}
	lo := (b*m.passes + k) * m.classes
	return m.data[lo : lo+m.classes]
}

// Item returns the probability matrix of item b as a passes x classes
// dense matrix. The matrix shares the cube's storage.
func (m *Cube) Item(b int) *mat.Dense {
	if b < 0 || b >= m.items {
		panic(ErrIndexOutOfRange)
	}
	lo := b * m.passes * m.classes
	return mat.NewDense(m.passes, m.classes, m.data[lo:lo+m.passes*m.classes])
}

// Slice returns a view of the items in [lo, hi).
// The view shares the cube's storage.
func (m *Cube) Slice(lo, hi int) *Cube {
	if lo < 0 || hi > m.items || lo >= hi {
		panic(ErrIndexOutOfRange)
	}
	return &Cube{
		items:   hi - lo,
		passes:  m.passes,
		classes: m.classes,
		data:    m.data[lo*m.passes*m.classes : hi*m.passes*m.classes],
	}
}
