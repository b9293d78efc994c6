// Package gcodegen turns a slice stack into toolpath G-code. It is grounded
// directly on original_source/src/gcode.rs: a PerAxis[T] map-of-axis-to-value,
// a closed Command sum with a Code() method, and a GCodeBuilder that
// accumulates commands and renders them newline-joined.
package gcodegen

import (
	"fmt"
	"strings"

	"github.com/kiln3d/slicer/geom"
	"github.com/kiln3d/slicer/slicer"
)

// Axis is one of the three printer axes. A closed enum, not an inheritance
// hierarchy.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// PerAxis holds an optional value of type T per axis, mirroring the
// original's PerAxis<T> map-of-axis-to-value.
type PerAxis[T any] struct {
	values map[Axis]T
}

// NewPerAxis returns a PerAxis with no axes set.
func NewPerAxis[T any]() PerAxis[T] {
	return PerAxis[T]{values: make(map[Axis]T)}
}

// Set records value for axis, returning the receiver for chaining - the
// same builder-style chaining original_source's PerAxis::set uses.
func (p PerAxis[T]) Set(axis Axis, value T) PerAxis[T] {
	p.values[axis] = value
	return p
}

func (p PerAxis[T]) entries() []Axis {
	axes := make([]Axis, 0, len(p.values))
	for a := range p.values {
		axes = append(axes, a)
	}
	// Deterministic output: map iteration order is randomized in Go, but
	// G-code readers don't care about axis order within one line - we only
	// need a stable *output*, so sort by the fixed X<Y<Z enum order.
	for i := 1; i < len(axes); i++ {
		for j := i; j > 0 && axes[j] < axes[j-1]; j-- {
			axes[j], axes[j-1] = axes[j-1], axes[j]
		}
	}
	return axes
}

// Command is one G-code instruction. Concrete types below match
// original_source's Command enum variants one-for-one.
type Command interface {
	Code() string
}

type Home struct{ Axes PerAxis[struct{}] }

func (c Home) Code() string {
	var b strings.Builder
	b.WriteString("G28")
	for _, axis := range c.Axes.entries() {
		fmt.Fprintf(&b, " %s", axis)
	}
	return b.String()
}

type SetAbsolutePositioning struct{}

func (SetAbsolutePositioning) Code() string { return "G90" }

type SetRelativePositioning struct{}

func (SetRelativePositioning) Code() string { return "G91" }

type Move struct {
	Amounts PerAxis[int64]
	Speed   uint32
}

func (c Move) Code() string {
	var b strings.Builder
	b.WriteString("G1 ")
	for _, axis := range c.Amounts.entries() {
		fmt.Fprintf(&b, "%s%d ", axis, c.Amounts.values[axis])
	}
	fmt.Fprintf(&b, "F%d", c.Speed)
	return b.String()
}

type ExtrudeMove struct {
	Amounts    PerAxis[int64]
	Speed      uint32
	ExtrudeLen uint32
}

func (c ExtrudeMove) Code() string {
	var b strings.Builder
	b.WriteString("G1 ")
	for _, axis := range c.Amounts.entries() {
		fmt.Fprintf(&b, "%s%d ", axis, c.Amounts.values[axis])
	}
	fmt.Fprintf(&b, "E%d F%d", c.ExtrudeLen, c.Speed)
	return b.String()
}

type SetPosition struct{ Positions PerAxis[int64] }

func (c SetPosition) Code() string {
	var b strings.Builder
	b.WriteString("G92")
	for _, axis := range c.Positions.entries() {
		fmt.Fprintf(&b, " %s%d", axis, c.Positions.values[axis])
	}
	return b.String()
}

type SetExtruderPosition struct{ Position int64 }

func (c SetExtruderPosition) Code() string {
	return fmt.Sprintf("G92 E%d", c.Position)
}

type BlockingSetTemp struct{ Temp uint32 }

func (c BlockingSetTemp) Code() string {
	return fmt.Sprintf("M109 S%d", c.Temp)
}

// GCodeBuilder accumulates commands and renders them newline-joined,
// mirroring original_source's GCodeBuilder.
type GCodeBuilder struct {
	commands  []Command
	config    slicer.SlicerConfig
	topHeight int64
}

// NewGCodeBuilder starts a builder for the given configuration.
func NewGCodeBuilder(config slicer.SlicerConfig) *GCodeBuilder {
	return &GCodeBuilder{config: config}
}

func (b *GCodeBuilder) command(c Command) {
	b.commands = append(b.commands, c)
}

// AddStartingGCode emits the fixed startup preamble: absolute positioning,
// home all axes, and block until the hotend reaches temperature.
func (b *GCodeBuilder) AddStartingGCode() {
	b.command(SetAbsolutePositioning{})
	b.command(Home{Axes: NewPerAxis[struct{}]()})
	b.command(BlockingSetTemp{Temp: uint32(b.config.HotendTemperature)})
}

// microsPerNanometerStep matches original_source's literal nm/mm
// conversion constant (flagged FIXME there: "don't hardcode nm/mm
// conversion"); kept as a named constant here rather than silently
// reproducing the magic number, but the simplification itself is carried
// forward unresolved, exactly as the original leaves it.
const microsPerNanometerStep = 200_000

// AddSlice appends the G-code for one slice: a Z move to the slice's
// cumulative height, then an extrude move per outline vertex of every
// island. Hole vertices are walked too now that slicer.ClassifyHoles populates
// them, resolving original_source's own "TODO: island holes".
func (b *GCodeBuilder) AddSlice(slice slicer.Slice) {
	b.topHeight += int64(slice.Thickness) * microsPerNanometerStep
	b.command(Move{
		Speed:   uint32(b.config.TravelSpeed),
		Amounts: NewPerAxis[int64]().Set(Z, b.topHeight),
	})

	for _, island := range slice.Islands {
		b.walkOutline(island.Outline.Vertices)
		for _, hole := range island.Holes {
			b.walkOutline(hole.Vertices)
		}
	}
}

func (b *GCodeBuilder) walkOutline(vertices []geom.Vector2D) {
	for _, v := range vertices {
		b.command(ExtrudeMove{
			Speed:      1,    // TODO: derive from config.TravelSpeed and extrusion width
			ExtrudeLen: 1,    // TODO: derive from filament diameter and segment length
			Amounts:    NewPerAxis[int64]().Set(X, v.X*microsPerNanometerStep).Set(Y, v.Y*microsPerNanometerStep),
		})
	}
}

// generateGCode renders the accumulated commands, one per line, in the
// order they were appended.
func (b *GCodeBuilder) generateGCode() string {
	lines := make([]string, len(b.commands))
	for i, c := range b.commands {
		lines[i] = c.Code()
	}
	return strings.Join(lines, "\n")
}

// Generate runs the fixed pipeline original_source's slices_to_gcode does:
// starting preamble, then one AddSlice call per slice, then render.
func Generate(config slicer.SlicerConfig, slices []slicer.Slice) string {
	b := NewGCodeBuilder(config)
	b.AddStartingGCode()
	for _, s := range slices {
		b.AddSlice(s)
	}
	return b.generateGCode()
}
