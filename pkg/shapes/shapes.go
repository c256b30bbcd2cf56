// Package shapes is a small capability family served through a factory.
//
// Circle and Square are registered directly under the Shape contract;
// Rectangle and Triangle sit under the abstract Polygon layer, so the index
// order is Circle, Square, Rectangle, Triangle.
//
//	f := shapes.NewFactory()
//	c, err := f.Produce(ctx, "Circle", 5.0)
package shapes

import (
	"fmt"
	"math"

	"github.com/randalmurphal/factory/pkg/factory"
)

// Shape is the contract every implementation satisfies.
type Shape interface {
	Area() float64
	Perimeter() float64
	String() string
}

// Contract is the root of the Shape family.
var Contract = factory.NewContract[Shape]("Shape")

// Polygon groups implementations with straight sides. It is never produced.
var Polygon = Contract.Abstract("Polygon")

func init() {
	Contract.Provide("Circle", newCircle)
	Contract.Provide("Square", newSquare)
	Polygon.Provide("Rectangle", newRectangle)
	Polygon.Provide("Triangle", newTriangle)
}

// NewFactory returns a factory over the Shape family.
func NewFactory(opts ...factory.Option) *factory.Factory[Shape] {
	return factory.New("ShapeFactory", Contract, opts...)
}

// Circle is a circle of a given radius.
type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }
func (c *Circle) String() string     { return fmt.Sprintf("Circle(radius=%g)", c.Radius) }

// Square is a square of a given side length.
type Square struct {
	Side float64
}

func (s *Square) Area() float64      { return s.Side * s.Side }
func (s *Square) Perimeter() float64 { return 4 * s.Side }
func (s *Square) String() string     { return fmt.Sprintf("Square(side=%g)", s.Side) }

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width, Height float64
}

func (r *Rectangle) Area() float64      { return r.Width * r.Height }
func (r *Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }
func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(width=%g, height=%g)", r.Width, r.Height)
}

// Triangle is a triangle given by its three side lengths.
type Triangle struct {
	A, B, C float64
}

// Area uses Heron's formula.
func (t *Triangle) Area() float64 {
	s := t.Perimeter() / 2
	return math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C))
}

func (t *Triangle) Perimeter() float64 { return t.A + t.B + t.C }
func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle(a=%g, b=%g, c=%g)", t.A, t.B, t.C)
}
