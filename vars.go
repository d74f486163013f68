// This file is part of ttbasic.

package basic

// vars holds the 26 scalar variables A-Z and the SizeArray-cell @() array,
// grounded on basic.c's `var[26]` and `arr[SIZE_ARRAY]` globals (lines
// 188-189). Index 0 is A, 25 is Z.
type vars struct {
	scalar [26]Cell
	array  [SizeArray]Cell
}

func (v *vars) reset() {
	v.scalar = [26]Cell{}
	v.array = [SizeArray]Cell{}
}

// get returns the value of scalar variable idx (0-25).
func (v *vars) get(idx byte) Cell { return v.scalar[idx] }

// set stores val into scalar variable idx (0-25).
func (v *vars) set(idx byte, val Cell) { v.scalar[idx] = val }

// arrayGet returns @(idx), or ErrSubscript if idx is out of range.
func (v *vars) arrayGet(idx Cell) (Cell, error) {
	if idx < 0 || int(idx) >= len(v.array) {
		return 0, ErrSubscript
	}
	return v.array[idx], nil
}

// arraySet stores val into @(idx), or reports ErrSubscript if idx is out
// of range.
func (v *vars) arraySet(idx Cell, val Cell) error {
	if idx < 0 || int(idx) >= len(v.array) {
		return ErrSubscript
	}
	v.array[idx] = val
	return nil
}
