package scad

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/chazu/facet/pkg/model"
	"github.com/chazu/facet/pkg/primitive"
)

func TestWriteSceneModules(t *testing.T) {
	scene := model.NewScene()
	scene.AddPart("plate", model.NewCube(r3.Vector{X: 60, Y: 40, Z: 8}, false))
	scene.AddPart("boss", model.NewCylinder(5, 12, 32))

	var buf bytes.Buffer
	if err := WriteScene(&buf, scene); err != nil {
		t.Fatalf("WriteScene failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"module plate() {",
		"module boss() {",
		"cube([60, 40, 8], center = false);",
		"cylinder(h = 12, r = 5, $fn = 32);",
		"plate();",
		"boss();",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Module definitions precede the calls.
	if strings.Index(out, "module boss") > strings.Index(out, "plate();") {
		t.Error("module definition appears after call block")
	}
}

func TestWriteSceneRejectsInvalid(t *testing.T) {
	scene := model.NewScene()
	scene.AddPart("bad", model.NewBoolean(model.OpUnion,
		model.NewCube(r3.Vector{X: 1, Y: 1, Z: 1}, false)))

	var buf bytes.Buffer
	if err := WriteScene(&buf, scene); err == nil {
		t.Error("expected validation error for single-child boolean")
	}
}

func TestWriteNodeBoolean(t *testing.T) {
	n := model.NewBoolean(model.OpDifference,
		model.NewCube(r3.Vector{X: 10, Y: 10, Z: 10}, true),
		model.NewSphere(6, 48),
	)

	var buf bytes.Buffer
	if err := WriteNode(&buf, n); err != nil {
		t.Fatalf("WriteNode failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "difference() {\n") {
		t.Errorf("output does not open with difference block:\n%s", out)
	}
	if !strings.Contains(out, "  cube([10, 10, 10], center = true);") {
		t.Errorf("missing indented cube child:\n%s", out)
	}
	if !strings.Contains(out, "  sphere(r = 6, $fn = 48);") {
		t.Errorf("missing indented sphere child:\n%s", out)
	}
}

func TestWriteNodeTransformOrder(t *testing.T) {
	n := &model.Node{
		Kind:        model.KindTransform,
		Translation: r3.Vector{X: 5, Y: 0, Z: 2},
		Rotation:    r3.Vector{Z: 45},
		Children:    []*model.Node{model.NewCube(r3.Vector{X: 1, Y: 1, Z: 1}, false)},
	}

	var buf bytes.Buffer
	if err := WriteNode(&buf, n); err != nil {
		t.Fatalf("WriteNode failed: %v", err)
	}
	out := buf.String()

	ti := strings.Index(out, "translate([5, 0, 2])")
	ri := strings.Index(out, "rotate([0, 0, 45])")
	if ti < 0 || ri < 0 {
		t.Fatalf("missing transform lines:\n%s", out)
	}
	// Outermost modifier applies last: the child rotates in place, then
	// moves, so translate must wrap rotate.
	if ti > ri {
		t.Errorf("translate must precede rotate:\n%s", out)
	}
}

func TestWriteNodeTranslateOnly(t *testing.T) {
	n := model.NewTranslate(r3.Vector{X: -3}, model.NewSphere(2, 16))

	var buf bytes.Buffer
	if err := WriteNode(&buf, n); err != nil {
		t.Fatalf("WriteNode failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "translate([-3, 0, 0])") {
		t.Errorf("missing translate line:\n%s", out)
	}
	if strings.Contains(out, "rotate(") {
		t.Errorf("zero rotation should not emit rotate:\n%s", out)
	}
}

func TestWriteNodeRotateOnly(t *testing.T) {
	n := model.NewRotate(r3.Vector{Z: 90}, model.NewCube(r3.Vector{X: 1, Y: 1, Z: 1}, false))

	var buf bytes.Buffer
	if err := WriteNode(&buf, n); err != nil {
		t.Fatalf("WriteNode failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "rotate([0, 0, 90])") {
		t.Errorf("missing rotate line:\n%s", out)
	}
	if strings.Contains(out, "translate(") {
		t.Errorf("zero translation should not emit translate:\n%s", out)
	}
}

func TestWriteNodeGroup(t *testing.T) {
	n := model.NewGroup(
		model.NewCube(r3.Vector{X: 1, Y: 1, Z: 1}, false),
		model.NewSphere(1, 8),
	)

	var buf bytes.Buffer
	if err := WriteNode(&buf, n); err != nil {
		t.Fatalf("WriteNode failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "union() {\n") {
		t.Errorf("group should render as union:\n%s", buf.String())
	}
}

func TestPolyhedron(t *testing.T) {
	cube := primitive.Cube(2, 2, 2, false)

	var buf bytes.Buffer
	if err := Polyhedron(&buf, cube); err != nil {
		t.Fatalf("Polyhedron failed: %v", err)
	}
	out := buf.String()

	// 12 triangles over 8 deduplicated corner points.
	if got := strings.Count(out, "\n    ["); got != 8+12 {
		t.Errorf("point+face line count = %d, want 20:\n%s", got, out)
	}
	if !strings.Contains(out, "points = [") || !strings.Contains(out, "faces = [") {
		t.Errorf("missing polyhedron sections:\n%s", out)
	}
	if !strings.Contains(out, "[0, 0, 0],") {
		t.Errorf("missing origin corner point:\n%s", out)
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plate", "plate"},
		{"left-bracket", "left_bracket"},
		{"part 2", "part_2"},
		{"9lives", "_9lives"},
		{"", "_part"},
		{"Ok_Name", "Ok_Name"},
	}
	for _, tt := range tests {
		if got := moduleName(tt.in); got != tt.want {
			t.Errorf("moduleName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
