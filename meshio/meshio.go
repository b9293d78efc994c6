// Package meshio reads ASCII and binary STL files into a mesh.Mesh using
// the internal integer micron unit. It is grounded on
// original_source/src/parsing.rs and on the pack's own ansipixels-trophy
// STL loader, which - like this package - is written entirely against the
// standard library; no third-party STL parsing library appears anywhere in
// the retrieved corpus.
package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kiln3d/slicer/geom"
	"github.com/kiln3d/slicer/mesh"
	"github.com/kiln3d/slicer/slicer"
)

// Units is the measurement unit an STL file's coordinates are stated in.
// Converting to the internal unit multiplies by 25400 for inches or 1000
// for millimeters - both conversions produce microns.
type Units int

const (
	Millimeters Units = iota
	Inches
)

func (u Units) microsPerUnit() float64 {
	switch u {
	case Inches:
		return 25400
	default:
		return 1000
	}
}

const binaryHeaderLength = 80

// Detect reports whether data looks like a binary STL file, mirroring the
// original's detect_stl_type: absence of a leading "solid" token, long
// enough to also hold the 80-byte binary header, is the classic sniff
// heuristic. Like the pack's isBinarySTL, it also confirms the binary
// triangle count matches the file's actual size before committing, since
// some ASCII files are misleadingly prefixed.
func Detect(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		if len(data) < binaryHeaderLength+4 {
			return false
		}
		triCount := binary.LittleEndian.Uint32(data[binaryHeaderLength : binaryHeaderLength+4])
		expected := uint64(binaryHeaderLength+4) + uint64(triCount)*50
		return uint64(len(data)) == expected
	}
	return len(data) >= binaryHeaderLength+4
}

func parseErr(format string, args ...any) error {
	return slicer.NewError(slicer.MeshFileParse, fmt.Sprintf(format, args...))
}

func convertAndValidate(value float64, units Units) (int64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, parseErr("non-finite coordinate %v", value)
	}
	return int64(value * units.microsPerUnit()), nil
}

// ParseBinary parses a binary STL file, mirroring original_source's
// BinaryStlParser: skip the 80-byte header, read the facet count, then
// read each facet's normal (discarded) and three vertices.
func ParseBinary(data []byte, units Units) (*mesh.Mesh, error) {
	if len(data) < binaryHeaderLength+4 {
		return nil, parseErr("binary STL too short: %d bytes", len(data))
	}
	triCount := binary.LittleEndian.Uint32(data[binaryHeaderLength : binaryHeaderLength+4])
	offset := binaryHeaderLength + 4

	expected := binaryHeaderLength + 4 + int(triCount)*50
	if len(data) < expected {
		return nil, parseErr("binary STL truncated: expected %d bytes, got %d", expected, len(data))
	}

	facets := make([]mesh.Facet, 0, triCount)
	for i := uint32(0); i < triCount; i++ {
		offset += 12 // skip normal
		var verts [3]geom.Vector3D
		for v := 0; v < 3; v++ {
			x, err := convertAndValidate(float64(readFloat32LE(data[offset:])), units)
			if err != nil {
				return nil, err
			}
			y, err := convertAndValidate(float64(readFloat32LE(data[offset+4:])), units)
			if err != nil {
				return nil, err
			}
			z, err := convertAndValidate(float64(readFloat32LE(data[offset+8:])), units)
			if err != nil {
				return nil, err
			}
			verts[v] = geom.Vector3D{X: x, Y: y, Z: z}
			offset += 12
		}
		facets = append(facets, mesh.NewFacet(verts[0], verts[1], verts[2]))
		offset += 2 // attribute byte count, unused
	}

	return mesh.NewMesh(facets), nil
}

func readFloat32LE(data []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data))
}

// ParseASCII parses an ASCII STL file line by line, mirroring
// original_source's AsciiStlParser token-eating state machine but built
// on bufio.Scanner/strings.Fields the way the pack's own ASCII STL loader
// is.
func ParseASCII(data []byte, units Units) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	var facets []mesh.Facet
	var pending []geom.Vector3D
	inFacet := false
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch strings.ToLower(fields[0]) {
		case "solid":
			// Nothing retained; facet normals and solid names are parsed
			// but not kept - the core only needs vertex positions.
		case "facet":
			inFacet = true
			pending = pending[:0]
		case "vertex":
			if !inFacet {
				return nil, parseErr("line %d: vertex outside facet", lineNum)
			}
			if len(fields) < 4 {
				return nil, parseErr("line %d: vertex needs x y z", lineNum)
			}
			v, err := parseVertex(fields[1:4], units)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			pending = append(pending, v)
		case "endfacet":
			if len(pending) != 3 {
				return nil, parseErr("line %d: facet did not have exactly 3 vertices", lineNum)
			}
			facets = append(facets, mesh.NewFacet(pending[0], pending[1], pending[2]))
			inFacet = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, parseErr("reading ASCII STL: %v", err)
	}

	return mesh.NewMesh(facets), nil
}

func parseVertex(fields []string, units Units) (geom.Vector3D, error) {
	var coords [3]int64
	for i, f := range fields {
		raw, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Vector3D{}, parseErr("invalid coordinate %q", f)
		}
		coord, err := convertAndValidate(raw, units)
		if err != nil {
			return geom.Vector3D{}, err
		}
		coords[i] = coord
	}
	return geom.Vector3D{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParsedMesh pairs a parsed Mesh with the name it was read from, for
// callers (cmd/slicer) that report the source file alongside the result.
type ParsedMesh struct {
	Name string
	Mesh *mesh.Mesh
}

// Parse auto-detects the STL encoding and parses accordingly.
func Parse(data []byte, units Units) (*mesh.Mesh, error) {
	if Detect(data) {
		return ParseBinary(data, units)
	}
	return ParseASCII(data, units)
}
