package model

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"tiny-renderer/internal/mathutil"
)

const square = "# unit square\r\n" +
	"v -1 -1 0\r\n" +
	"v 1 -1 0\r\n" +
	"v 1 1 0\r\n" +
	"v -1 1 0.5\r\n" +
	"vt 0 0 0\r\n" +
	"vn 0 0 1\r\n" +
	"f 1/1/1 2/2/1 3/3/1\r\n" +
	"f 1/1/1 3/3/1 4/4/1\r\n"

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(square), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 4 || m.FaceCount() != 2 {
		t.Fatalf("counts = %d, %d", m.VertexCount(), m.FaceCount())
	}
	if v := m.Vertex(3); v != (mathutil.Vec3{-1, 1, 0.5}) {
		t.Fatalf("vertex 3 = %v", v)
	}
	if f := m.Face(1); f != [3]int{0, 2, 3} {
		t.Fatalf("face 1 = %v, want zero-based [0 2 3]", f)
	}
	fv := m.FaceVertices(0)
	if fv[1] != (mathutil.Vec3{1, -1, 0}) {
		t.Fatalf("face vertices = %v", fv)
	}
}

func TestParseLF(t *testing.T) {
	src := strings.ReplaceAll(square, "\r\n", "\n")
	m, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 4 || m.FaceCount() != 2 {
		t.Fatalf("counts = %d, %d", m.VertexCount(), m.FaceCount())
	}
}

func TestParseSkipsBadFieldCount(t *testing.T) {
	src := "v 1 2 3\nv 1 2\nv 4 5 6\nf 1 2\nf 1/1 2/2 1/1 2/2\nf 1 2 1\n"
	var logBuf bytes.Buffer
	m, err := Parse(strings.NewReader(src), log.New(&logBuf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 2 || m.FaceCount() != 1 {
		t.Fatalf("counts = %d, %d", m.VertexCount(), m.FaceCount())
	}
	for _, n := range []int{2, 4, 5} {
		if !strings.Contains(logBuf.String(), "bad file line "+strconv.Itoa(n)) {
			t.Fatalf("no diagnostic for line %d:\n%s", n, logBuf.String())
		}
	}
}

func TestParseBadNumber(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		tok  string
	}{
		{"vertex", "v 1 2 3\nv 1 x 3\n", 2, "x"},
		{"face", "v 1 2 3\nf 1 a/2 1\n", 2, "a/2"},
		{"face range", "v 1 2 3\nf 1 1 2\n", 2, "2"},
		{"face zero", "v 1 2 3\nf 0 1 1\n", 2, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src), nil)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("err = %v, want ErrParse", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err %T is not *ParseError", err)
			}
			if pe.Line != tc.line || pe.Token != tc.tok {
				t.Fatalf("line %d token %q, want %d %q", pe.Line, pe.Token, tc.line, tc.tok)
			}
		})
	}
}

func TestParseForwardReference(t *testing.T) {
	m, err := Parse(strings.NewReader("f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Face(0) != [3]int{0, 1, 2} {
		t.Fatalf("face = %v", m.Face(0))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.obj")
	if err := os.WriteFile(path, []byte(square), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := m.Bounds()
	if lo != (mathutil.Vec3{-1, -1, 0}) || hi != (mathutil.Vec3{1, 1, 0.5}) {
		t.Fatalf("bounds = %v %v", lo, hi)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.obj"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
