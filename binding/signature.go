package binding

// Signature is a named, reusable input signature: the axis delegate produced
// by a completed learning run together with a caller supplied identifier.
// Downstream layers store and look up signatures by name
type Signature struct {
	Name string
	Axis AxisFunc
}

// NewSignature wraps a resolved axis delegate and an identifier into a
// Signature
func NewSignature(name string, axis AxisFunc) Signature {
	return Signature{
		Name: name,
		Axis: axis,
	}
}

// Value returns the current value of the signature's axis. A signature with
// no axis reads as zero
func (s Signature) Value() float64 {
	if s.Axis == nil {
		return 0
	}
	return s.Axis()
}
