// Package quadtree implements the terrain spatial index: a fixed 4-ary
// hierarchy over a square footprint, rebuilt never, walked every frame to
// cull nodes against the view frustum and pick a level of detail per node.
package quadtree

import (
	"github.com/Faultbox/terralod/pkg/math"
)

// boundsPadY pads node bounds vertically beyond the known height range so
// geometry displaced up to this much is not culled at the frustum edge.
const boundsPadY = 10.0

// Build-time vertical placeholder. SetHeightRange replaces it on the root
// once the heightfield's real extent is known.
const (
	defaultMinY = 0.0
	defaultMaxY = 100.0
)

// subdivideFactor scales node size into the camera proximity threshold
// below which a non-leaf node is refined into its children.
const subdivideFactor = 1.5

// FrameState holds the per-frame fields of a node. It is overwritten as a
// whole for every node visited during Update; nodes inside a frustum-culled
// subtree are not visited and keep stale values, which VisibleNodes ignores.
type FrameState struct {
	Visible  bool
	LOD      int
	DrawSlot int
}

// Node is a square terrain region in the LOD hierarchy.
type Node struct {
	X, Z  float32 // footprint center, world space
	Size  float32 // footprint edge length
	Depth int     // 0 at the root

	MinY, MaxY float32
	Bounds     BoundingBox

	IsLeaf   bool
	Children [4]*Node // NW, NE, SW, SE; all nil when IsLeaf

	Frame FrameState
	frame uint64 // Update generation that last visited this node
}

// refreshBounds recomputes the node's box from its footprint and vertical
// range.
func (n *Node) refreshBounds() {
	midY := (n.MinY + n.MaxY) * 0.5
	extY := (n.MaxY-n.MinY)*0.5 + boundsPadY

	n.Bounds = BoundingBox{
		Center:  math.Vec3{X: n.X, Y: midY, Z: n.Z},
		Extents: math.Vec3{X: n.Size * 0.5, Y: extY, Z: n.Size * 0.5},
	}
}

// Quadtree owns the node hierarchy and the LOD distance bands. It is built
// once by Initialize and mutated per frame only through Update. Not safe
// for concurrent use; callers run Update and the read accessors from a
// single frame thread.
type Quadtree struct {
	root *Node

	terrainSize  float32
	minNodeSize  float32
	maxLODLevels int

	lodDistances []float32

	visibleNodeCount int
	totalNodeCount   int
	nextDrawSlot     int
	frame            uint64
}

// New returns an empty quadtree. Initialize must be called before any
// per-frame operation.
func New() *Quadtree {
	return &Quadtree{}
}

// SetLODDistances overrides the derived distance bands. It must be called
// before Initialize to take effect, with exactly one increasing distance
// per LOD level. The bands are used verbatim; they are not validated or
// re-sorted.
func (q *Quadtree) SetLODDistances(distances []float32) {
	q.lodDistances = distances
}

// Initialize builds the full hierarchy over a terrainSize x terrainSize
// footprint centered at the origin. A node splits into four half-size
// children while its size exceeds minNodeSize and its depth is below
// maxLODLevels-1, so tree depth is bounded by maxLODLevels. Calling
// Initialize again rebuilds the tree from scratch.
func (q *Quadtree) Initialize(terrainSize, minNodeSize float32, maxLODLevels int) {
	q.terrainSize = terrainSize
	q.minNodeSize = minNodeSize
	q.maxLODLevels = maxLODLevels

	q.visibleNodeCount = 0
	q.totalNodeCount = 0
	q.nextDrawSlot = 0

	if len(q.lodDistances) == 0 {
		// Band i covers distances below minNodeSize * 2^(maxLODLevels-i):
		// the coarsest LOD owns the farthest band.
		q.lodDistances = make([]float32, maxLODLevels)
		for i := 0; i < maxLODLevels; i++ {
			base := minNodeSize * float32(uint(1)<<uint(maxLODLevels-i-1))
			q.lodDistances[i] = base * 2.0
		}
	}

	q.root = &Node{}
	q.buildNode(q.root, 0, 0, terrainSize, 0)
}

func (q *Quadtree) buildNode(n *Node, x, z, size float32, depth int) {
	n.X = x
	n.Z = z
	n.Size = size
	n.Depth = depth

	n.MinY = defaultMinY
	n.MaxY = defaultMaxY
	n.refreshBounds()

	q.totalNodeCount++

	canSplit := size > q.minNodeSize && depth < q.maxLODLevels-1
	if !canSplit {
		n.IsLeaf = true
		return
	}

	half := size * 0.5
	quarter := size * 0.25

	for i := range n.Children {
		n.Children[i] = &Node{}
	}
	q.buildNode(n.Children[0], x-quarter, z+quarter, half, depth+1) // NW
	q.buildNode(n.Children[1], x+quarter, z+quarter, half, depth+1) // NE
	q.buildNode(n.Children[2], x-quarter, z-quarter, half, depth+1) // SW
	q.buildNode(n.Children[3], x+quarter, z-quarter, half, depth+1) // SE
}

// SetHeightRange updates the root's vertical bounds to the terrain's real
// elevation range. Descendants keep the build-time placeholder range, so
// only root-level culling uses the measured extent.
func (q *Quadtree) SetHeightRange(minY, maxY float32) {
	if q.root == nil {
		return
	}

	q.root.MinY = minY
	q.root.MaxY = maxY
	q.root.refreshBounds()
}

// Update re-evaluates visibility, LOD and draw slots for the whole tree in
// deterministic pre-order (NW, NE, SW, SE). A node failing the frustum test
// prunes its entire subtree. A visible non-leaf node with the camera closer
// than subdivideFactor times its size defers drawing to its children;
// otherwise the node becomes a draw unit and receives the next sequential
// draw slot. Panics if Initialize has not been called.
func (q *Quadtree) Update(cameraPos math.Vec3, planes [6]math.Vec4) {
	if q.root == nil {
		panic("quadtree: Update called before Initialize")
	}

	q.visibleNodeCount = 0
	q.nextDrawSlot = 0
	q.frame++

	q.updateNode(q.root, cameraPos, &planes)
}

func (q *Quadtree) updateNode(n *Node, cameraPos math.Vec3, planes *[6]math.Vec4) {
	n.frame = q.frame

	if !n.Bounds.Intersects(planes) {
		n.Frame = FrameState{}
		return
	}

	lod := q.CalculateLOD(n, cameraPos)

	if !n.IsLeaf && q.shouldSubdivide(n, cameraPos) {
		// A descendant is drawn in this node's place.
		n.Frame = FrameState{LOD: lod}
		for _, c := range n.Children {
			q.updateNode(c, cameraPos, planes)
		}
		return
	}

	n.Frame = FrameState{Visible: true, LOD: lod, DrawSlot: q.nextDrawSlot}
	q.nextDrawSlot++
	q.visibleNodeCount++
}

// CalculateLOD returns the detail tier for a node as seen from cameraPos:
// the index of the first distance band exceeding the camera's distance to
// the node's footprint center at its vertical midpoint, or the coarsest
// tier when the camera is beyond every band.
func (q *Quadtree) CalculateLOD(n *Node, cameraPos math.Vec3) int {
	midY := (n.MinY + n.MaxY) * 0.5
	dist := cameraPos.Distance(math.Vec3{X: n.X, Y: midY, Z: n.Z})

	for i, band := range q.lodDistances {
		if dist < band {
			return i
		}
	}
	return q.maxLODLevels - 1
}

// shouldSubdivide reports whether the camera is close enough on the XZ
// plane that the node's footprint would look too coarse drawn whole.
func (q *Quadtree) shouldSubdivide(n *Node, cameraPos math.Vec3) bool {
	if n.IsLeaf {
		return false
	}

	distXZ := cameraPos.XZ().Distance(math.Vec2{X: n.X, Y: n.Z})
	return distXZ < n.Size*subdivideFactor
}

// VisibleNodes returns the draw units selected by the last Update, ordered
// by draw slot. The slice indexes match each node's Frame.DrawSlot, so
// renderers can address per-object data by position. Panics if Initialize
// has not been called.
func (q *Quadtree) VisibleNodes() []*Node {
	if q.root == nil {
		panic("quadtree: VisibleNodes called before Initialize")
	}

	out := make([]*Node, 0, q.visibleNodeCount)
	q.collectVisible(q.root, &out)
	return out
}

func (q *Quadtree) collectVisible(n *Node, out *[]*Node) {
	// Nodes not visited by the last Update carry stale frame state.
	if n.frame != q.frame {
		return
	}
	if n.Frame.Visible {
		*out = append(*out, n)
		return
	}
	if n.IsLeaf {
		return
	}
	for _, c := range n.Children {
		q.collectVisible(c, out)
	}
}

// VisibleNodeCount returns the number of draw units selected by the last
// Update.
func (q *Quadtree) VisibleNodeCount() int {
	return q.visibleNodeCount
}

// TotalNodeCount returns the number of nodes built by Initialize.
func (q *Quadtree) TotalNodeCount() int {
	return q.totalNodeCount
}
