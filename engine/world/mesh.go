package world

import "github.com/go-gl/mathgl/mgl32"

// Mesh is one of LineMesh, PolygonMesh or BrushMesh.
type Mesh interface{ isMesh() }

// LineMesh is a polyline stroked white. Each index in Breaks ends a run: the
// vertex after it starts a new subpath.
type LineMesh struct {
	Vertices []mgl32.Vec3
	Breaks   []int
}

// Triangle indexes three vertices of a PolygonMesh.
type Triangle struct {
	A, B, C int
	Color   string
}

// PolygonMesh is a set of flat-coloured triangles. Triangles of every
// polygon mesh are painted together, farthest first.
type PolygonMesh struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle
}

// BrushMesh draws its brushes in order.
type BrushMesh struct {
	Brushes []Brush
}

func (*LineMesh) isMesh()    {}
func (*PolygonMesh) isMesh() {}
func (*BrushMesh) isMesh()   {}

// Action selects how a brush paints its path.
type Action uint8

const (
	ActionFill Action = 1 << iota
	ActionStroke
)

// Brush is one of LinesBrush or SphereBrush. An empty Stroke or Fill keeps
// the style already set on the context.
type Brush interface{ isBrush() }

type LinesBrush struct {
	Stroke, Fill string
	Vertices     []mgl32.Vec3
	Action       Action
}

// SphereBrush is a disc whose radius shrinks with distance from the camera.
type SphereBrush struct {
	Stroke, Fill string
	Center       mgl32.Vec3
	Radius       float32
	Action       Action
}

func (*LinesBrush) isBrush()  {}
func (*SphereBrush) isBrush() {}

// Shape is a world-space overlay not owned by any entity.
type Shape interface{ isShape() }

type LineShape struct {
	Begin, End mgl32.Vec3
}

// CircleShape keeps a fixed on-screen radius in pixels.
type CircleShape struct {
	Center mgl32.Vec3
	Radius float64
}

func (*LineShape) isShape()   {}
func (*CircleShape) isShape() {}

// Widget is a label pinned to an entity. Offset is in world units at the
// entity's depth.
type Widget interface{ isWidget() }

type TextWidget struct {
	Offset mgl32.Vec3
	Text   string
}

type FramedTextWidget struct {
	Offset        mgl32.Vec3
	Text          string
	Width, Height float32
}

func (*TextWidget) isWidget()       {}
func (*FramedTextWidget) isWidget() {}

// Cube returns the wireframe of an axis-aligned cube of edge size centred
// on the origin.
func Cube(size float32) *LineMesh {
	h := size / 2
	c := [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	v := []mgl32.Vec3{
		c[0], c[1], c[2], c[3], c[0], // back face
		c[4], c[5], c[6], c[7], c[4], // front face
		c[0], c[4],
		c[1], c[5],
		c[2], c[6],
		c[3], c[7],
	}
	return &LineMesh{Vertices: v, Breaks: []int{4, 9, 11, 13, 15}}
}

// Pyramid returns a square-based pyramid of the given base edge and height
// with its base centred on the origin. Each side takes the next colour of
// colors, cycling.
func Pyramid(base, height float32, colors ...string) *PolygonMesh {
	if len(colors) == 0 {
		colors = []string{"white"}
	}
	h := base / 2
	v := []mgl32.Vec3{
		{-h, 0, -h}, {h, 0, -h}, {h, 0, h}, {-h, 0, h},
		{0, height, 0},
	}
	sides := [][3]int{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}, {0, 2, 1}, {0, 3, 2}}
	tris := make([]Triangle, len(sides))
	for i, s := range sides {
		tris[i] = Triangle{A: s[0], B: s[1], C: s[2], Color: colors[i%len(colors)]}
	}
	return &PolygonMesh{Vertices: v, Triangles: tris}
}
