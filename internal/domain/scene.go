package domain

// Vec3 is an x/y/z triple used for positions, Euler rotations and scales
type Vec3 [3]float64

// GeometryKind names a primitive shape understood by the renderer
type GeometryKind string

const (
	GeometryBox      GeometryKind = "box"
	GeometryCylinder GeometryKind = "cylinder"
	GeometrySphere   GeometryKind = "sphere"
	GeometryCone     GeometryKind = "cone"
	GeometryTorus    GeometryKind = "torus"
	GeometryCircle   GeometryKind = "circle"
	GeometryRing     GeometryKind = "ring"
)

// Geometry is a primitive with its constructor arguments, in the renderer's order
type Geometry struct {
	Kind GeometryKind `json:"kind"`
	Args []float64    `json:"args"`
}

// Material describes surface shading
type Material struct {
	Color       string  `json:"color"`
	Roughness   float64 `json:"roughness"`
	Metalness   float64 `json:"metalness"`
	Opacity     float64 `json:"opacity,omitempty"` // 0 means opaque
	Wireframe   bool    `json:"wireframe,omitempty"`
	Transparent bool    `json:"transparent,omitempty"`
}

// Transform positions a node relative to its parent
type Transform struct {
	Position Vec3 `json:"position"`
	Rotation Vec3 `json:"rotation"`
	Scale    Vec3 `json:"scale"`
}

// SceneNode is a mesh (Geometry set) or a pure grouping node (Geometry nil)
type SceneNode struct {
	Name      string      `json:"name"`
	Geometry  *Geometry   `json:"geometry,omitempty"`
	Material  *Material   `json:"material,omitempty"`
	Transform Transform   `json:"transform"`
	Children  []SceneNode `json:"children,omitempty"`
}

// Scene is the render-ready description of one configured product
type Scene struct {
	Family string    `json:"family"`
	Root   SceneNode `json:"root"`
}
