// Package stl reads and writes STL files, the lingua franca of 3-D
// printing toolchains. Both binary and ASCII variants are supported for
// writing; reading handles the binary variant. STL carries bare triangles
// with face normals, so export is lossy: polygon structure, vertex
// normals, and UVs are discarded.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/chazu/facet/pkg/csg"
	"github.com/chazu/facet/pkg/kernel"
)

// binaryHeaderSize is the fixed STL binary header length.
const binaryHeaderSize = 80

// WriteBinary writes triangles as a binary STL with the given model name
// embedded in the header.
func WriteBinary(w io.Writer, name string, tris []csg.Triangle) error {
	bw := bufio.NewWriter(w)

	var header [binaryHeaderSize]byte
	copy(header[:], name)
	if _, err := bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "stl: write header")
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(tris))); err != nil {
		return errors.Wrap(err, "stl: write triangle count")
	}

	var rec [50]byte
	for _, t := range tris {
		n := t.Normal()
		putVec(rec[0:], n)
		putVec(rec[12:], t.A)
		putVec(rec[24:], t.B)
		putVec(rec[36:], t.C)
		rec[48], rec[49] = 0, 0 // attribute byte count
		if _, err := bw.Write(rec[:]); err != nil {
			return errors.Wrap(err, "stl: write triangle")
		}
	}
	return errors.Wrap(bw.Flush(), "stl: flush")
}

// WriteASCII writes triangles as an ASCII STL solid.
func WriteASCII(w io.Writer, name string, tris []csg.Triangle) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range tris {
		n := t.Normal()
		fmt.Fprintf(bw, "  facet normal %e %e %e\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range [3]r3.Vector{t.A, t.B, t.C} {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return errors.Wrap(bw.Flush(), "stl: flush")
}

// ReadBinary parses a binary STL stream into a solid, one polygon per
// triangle with vertex normals taken from the face.
func ReadBinary(r io.Reader) (*csg.Solid, error) {
	br := bufio.NewReader(r)

	var header [binaryHeaderSize]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, errors.Wrap(err, "stl: read header")
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "stl: read triangle count")
	}

	tris := make([]csg.Triangle, 0, count)
	var rec [50]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, rec[:]); err != nil {
			return nil, errors.Wrapf(err, "stl: read triangle %d of %d", i, count)
		}
		// The stored normal is ignored; winding defines it.
		tris = append(tris, csg.Triangle{
			A: getVec(rec[12:]),
			B: getVec(rec[24:]),
			C: getVec(rec[36:]),
		})
	}
	return csg.FromTriangles(tris), nil
}

// MeshTriangles converts a kernel mesh into triangles for export.
func MeshTriangles(m *kernel.Mesh) []csg.Triangle {
	tris := make([]csg.Triangle, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c, _ := m.Triangle(i)
		tris = append(tris, csg.Triangle{
			A: r3.Vector{X: a[0], Y: a[1], Z: a[2]},
			B: r3.Vector{X: b[0], Y: b[1], Z: b[2]},
			C: r3.Vector{X: c[0], Y: c[1], Z: c[2]},
		})
	}
	return tris
}

func putVec(b []byte, v r3.Vector) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

func getVec(b []byte) r3.Vector {
	return r3.Vector{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	}
}
