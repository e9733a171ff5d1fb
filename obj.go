package assetgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// WriteOBJ streams the document as Wavefront OBJ text: a v line followed
// immediately by its vn line for every vertex, then the faces as
// "f a//a b//b c//c" (the vertex index doubles as the normal index, no
// texture coordinate slot). Floats use the shortest representation that
// parses back to the same value, so a write/read cycle is lossless.
func (m *MeshDocument) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		p, n := v.Position, v.Normal
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X()), ftoa(p.Y()), ftoa(p.Z()))
		fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(n.X()), ftoa(n.Y()), ftoa(n.Z()))
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", f.A, f.A, f.B, f.B, f.C, f.C)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing obj stream: %v", ErrIO, err)
	}
	return nil
}

// SaveOBJ writes the document to path. If the file cannot be created
// nothing is written; a failure mid-stream leaves a partial file behind,
// there is no rollback.
func (m *MeshDocument) SaveOBJ(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIO, path, err)
	}
	if err := m.WriteOBJ(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrIO, path, err)
	}
	return nil
}

// ReadOBJ parses the v/vn/f subset of Wavefront OBJ emitted by WriteOBJ.
// Each vn is paired with the vertex most recently read; faces with more
// than three corners are fan-triangulated. Comments and directives outside
// the subset are skipped.
func ReadOBJ(r io.Reader) (*MeshDocument, error) {
	doc := &MeshDocument{}
	normals := 0

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			pos, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			doc.AddVertex(pos, mgl64.Vec3{})
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", line, err)
			}
			if normals >= doc.VertexCount() {
				return nil, fmt.Errorf("line %d: normal without a preceding vertex", line)
			}
			doc.Vertices[normals].Normal = n
			normals++
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 indices", line)
			}
			idx := make([]int, len(fields)-1)
			for i, tok := range fields[1:] {
				v, err := parseFaceIndex(tok, doc.VertexCount())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx[i] = v
			}
			for i := 1; i < len(idx)-1; i++ {
				doc.AddFace(idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading obj stream: %v", ErrIO, err)
	}

	return doc, nil
}

// LoadOBJ reads a mesh document from a file on disk.
func LoadOBJ(path string) (*MeshDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrIO, path, err)
	}
	defer file.Close()

	doc, err := ReadOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseVec3(fields []string) (mgl64.Vec3, error) {
	var out mgl64.Vec3
	if len(fields) < 3 {
		return out, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, fmt.Errorf("could not parse float value '%s': %w", fields[i], err)
		}
		out[i] = v
	}
	return out, nil
}

// parseFaceIndex accepts the v, v//vn and v/vt/vn corner forms and returns
// the 1-based vertex index, checked against the vertex count.
func parseFaceIndex(token string, vertexCount int) (int, error) {
	vert := token
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		vert = token[:slash]
	}
	idx, err := strconv.Atoi(vert)
	if err != nil {
		return 0, fmt.Errorf("could not parse face index '%s': %w", token, err)
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("face index %d out of range [1, %d]", idx, vertexCount)
	}
	return idx, nil
}
