// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmi

// GridShape returns the shape of gridID, (rows,cols) = (n_x,n_y) for the
// 2-D grid, per the convention picked to resolve spec.md's transposed
// sub_get_ny/nx Open Question (see DESIGN.md).
func (m *Model) GridShape(gridID int) ([]int, error) {
	switch gridID {
	case gridIDScalar:
		return []int{1}, nil
	case gridIDVector:
		return []int{m.nMouths()}, nil
	case gridID2D:
		return []int{m.Cube.Nx, m.Cube.Ny}, nil
	}
	return nil, errf(BadArgument, "unknown grid id %d", gridID)
}

// GridSize returns the total element count of gridID.
func (m *Model) GridSize(gridID int) (int, error) {
	shape, err := m.GridShape(gridID)
	if err != nil {
		return 0, err
	}
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n, nil
}

// GridSpacing returns (dx,dy) for the 2-D grid, or an empty slice for
// scalar/vector grids (they carry no spatial spacing).
func (m *Model) GridSpacing(gridID int) ([]float64, error) {
	switch gridID {
	case gridIDScalar, gridIDVector:
		return []float64{}, nil
	case gridID2D:
		return []float64{m.Cube.Dx, m.Cube.Dy}, nil
	}
	return nil, errf(BadArgument, "unknown grid id %d", gridID)
}

// GridOrigin returns (0,0) for the 2-D grid, or an empty slice otherwise.
func (m *Model) GridOrigin(gridID int) ([]float64, error) {
	switch gridID {
	case gridIDScalar, gridIDVector:
		return []float64{}, nil
	case gridID2D:
		return []float64{0, 0}, nil
	}
	return nil, errf(BadArgument, "unknown grid id %d", gridID)
}

// nMouths returns the current number of river mouths, 0 if avulsion is
// not configured for this run.
func (m *Model) nMouths() int {
	if m.Avulsion == nil {
		return 0
	}
	return len(m.Avulsion.Tree.Leaves())
}
