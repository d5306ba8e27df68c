// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2i is a 2D vector/point with X and Y int32 components.
type Vector2i struct {
	X int32
	Y int32
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vector2iScalar returns a new [Vector2i] with all components set to the given scalar value.
func Vector2iScalar(s int32) Vector2i {
	return Vector2i{X: s, Y: s}
}

// Vector2iFromVector2 returns a new [Vector2i] from a [Vector2],
// truncating each component toward zero.
func Vector2iFromVector2(v Vector2) Vector2i {
	return Vector2i{X: int32(v.X), Y: int32(v.Y)}
}

// Vector2iFromPoint returns a new [Vector2i] from an [image.Point].
func Vector2iFromPoint(pt image.Point) Vector2i {
	return Vector2i{X: int32(pt.X), Y: int32(pt.Y)}
}

// Set sets this vector X and Y components.
func (v *Vector2i) Set(x, y int32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector X and Y components to the same scalar value.
func (v *Vector2i) SetScalar(s int32) {
	v.X = s
	v.Y = s
}

// SetFromVector2 sets from a [Vector2] (float32) vector.
func (v *Vector2i) SetFromVector2(vf Vector2) {
	v.X = int32(vf.X)
	v.Y = int32(vf.Y)
}

// SetZero sets this vector X and Y components to be zero.
func (v *Vector2i) SetZero() {
	v.SetScalar(0)
}

// ToPoint returns the vector as an [image.Point].
func (v Vector2i) ToPoint() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// IsZero returns whether both components are zero.
func (v Vector2i) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2i) AddScalar(s int32) Vector2i {
	return Vector2i{v.X + s, v.Y + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2i) SetAdd(other Vector2i) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2i) SubScalar(s int32) Vector2i {
	return Vector2i{v.X - s, v.Y - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2i) SetSub(other Vector2i) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2i) Mul(other Vector2i) Vector2i {
	return Vector2i{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2i) MulScalar(s int32) Vector2i {
	return Vector2i{v.X * s, v.Y * s}
}

// Div divides each component of this vector by the corresponding one from other
// and returns resulting vector. Components of other that are zero yield zero.
func (v Vector2i) Div(other Vector2i) Vector2i {
	var r Vector2i
	if other.X != 0 {
		r.X = v.X / other.X
	}
	if other.Y != 0 {
		r.Y = v.Y / other.Y
	}
	return r
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector2i) DivScalar(s int32) Vector2i {
	if s == 0 {
		return Vector2i{}
	}
	return Vector2i{v.X / s, v.Y / s}
}

// Negate returns vector with each component negated.
func (v Vector2i) Negate() Vector2i {
	return Vector2i{-v.X, -v.Y}
}

// Abs returns vector with absolute value of each component.
func (v Vector2i) Abs() Vector2i {
	return Vector2i{abs32(v.X), abs32(v.Y)}
}

// Min returns min of this vector components vs. other vector.
func (v Vector2i) Min(other Vector2i) Vector2i {
	return Vector2i{min(v.X, other.X), min(v.Y, other.Y)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector2i) Max(other Vector2i) Vector2i {
	return Vector2i{max(v.X, other.X), max(v.Y, other.Y)}
}

// MinComponent returns the smaller of the X and Y components.
func (v Vector2i) MinComponent() int32 {
	return min(v.X, v.Y)
}

// MaxComponent returns the larger of the X and Y components.
func (v Vector2i) MaxComponent() int32 {
	return max(v.X, v.Y)
}

// Sum returns the sum of the X and Y components.
func (v Vector2i) Sum() int32 {
	return v.X + v.Y
}

// LengthSquared returns the length squared of this vector,
// computed in float32 so that large components do not overflow.
func (v Vector2i) LengthSquared() float32 {
	x, y := float32(v.X), float32(v.Y)
	return x*x + y*y
}

// Length returns the length of this vector.
func (v Vector2i) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Normal returns the unit [Vector2] pointing in the direction of this vector.
// The zero vector returns the zero vector.
func (v Vector2i) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{float32(v.X) / l, float32(v.Y) / l}
}

func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
