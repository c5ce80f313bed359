package model

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"tiny-renderer/internal/mathutil"
)

// Load reads a Wavefront-style model file. Only "v" and "f" records are
// used; see Parse.
func Load(path string, logger *log.Logger) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("model: load %s: %w", path, err)
	}
	return m, nil
}

// Parse reads vertex ("v x y z") and face ("f a/b/c a/b/c a/b/c") lines.
// Lines with the wrong number of fields are logged and skipped; a field
// that is not a number aborts the load with a *ParseError. Face indices
// are 1-based in the file and stored zero-based.
func Parse(r io.Reader, logger *log.Logger) (*Model, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	m := &Model{}
	var rawFaces []faceRef

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) < 3 {
			continue
		}

		switch line[:2] {
		case "v ":
			fields := strings.Fields(line[2:])
			if len(fields) != 3 {
				logger.Printf("model: bad file line %d: want 3 coordinates, got %d", lineNo, len(fields))
				continue
			}
			var v mathutil.Vec3
			for k, tok := range fields {
				n, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Token: tok, Err: err}
				}
				v[k] = n
			}
			m.Vertices = append(m.Vertices, v)

		case "f ":
			fields := strings.Fields(line[2:])
			if len(fields) != 3 {
				logger.Printf("model: bad file line %d: want 3 vertices, got %d", lineNo, len(fields))
				continue
			}
			ref := faceRef{line: lineNo}
			for k, tok := range fields {
				first, _, _ := strings.Cut(tok, "/")
				n, err := strconv.Atoi(first)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Token: tok, Err: err}
				}
				ref.idx[k] = n
				ref.tok[k] = tok
			}
			rawFaces = append(rawFaces, ref)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("model: scan: %w", err)
	}

	// Faces may precede the vertices they use, so indices are checked
	// once the whole file is read.
	m.Faces = make([][3]int, 0, len(rawFaces))
	for _, ref := range rawFaces {
		var face [3]int
		for k, n := range ref.idx {
			if n < 1 || n > len(m.Vertices) {
				return nil, &ParseError{
					Line:  ref.line,
					Token: ref.tok[k],
					Err:   fmt.Errorf("vertex index %d out of range 1..%d", n, len(m.Vertices)),
				}
			}
			face[k] = n - 1
		}
		m.Faces = append(m.Faces, face)
	}
	return m, nil
}

type faceRef struct {
	line int
	idx  [3]int
	tok  [3]string
}
