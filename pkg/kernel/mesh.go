package kernel

// Mesh is a triangle mesh suitable for export or rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // which scene part this came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AppendTriangle adds one triangle given vertex positions a, b, c and a
// face normal n, duplicating the normal per vertex.
func (m *Mesh) AppendTriangle(a, b, c, n [3]float64) {
	base := uint32(m.VertexCount())
	for _, p := range [3][3]float64{a, b, c} {
		m.Vertices = append(m.Vertices, float32(p[0]), float32(p[1]), float32(p[2]))
		m.Normals = append(m.Normals, float32(n[0]), float32(n[1]), float32(n[2]))
	}
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// Triangle returns the positions and normal of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c, n [3]float64) {
	read := func(vi uint32) ([3]float64, [3]float64) {
		return [3]float64{
				float64(m.Vertices[vi*3]), float64(m.Vertices[vi*3+1]), float64(m.Vertices[vi*3+2]),
			}, [3]float64{
				float64(m.Normals[vi*3]), float64(m.Normals[vi*3+1]), float64(m.Normals[vi*3+2]),
			}
	}
	a, n = read(m.Indices[i*3])
	b, _ = read(m.Indices[i*3+1])
	c, _ = read(m.Indices[i*3+2])
	return a, b, c, n
}
