package terrain

import "fmt"

// LODTierCount is the number of usable geometric detail tiers.
const LODTierCount = 5

// lodGridSizes is the quad grid resolution per detail tier, finest first.
var lodGridSizes = [LODTierCount]int{256, 128, 64, 32, 16}

// MeshName returns the geometry key for a detail tier ("lod0".."lod4").
// Out-of-range tiers clamp to the finest tier.
func MeshName(lod int) string {
	if lod < 0 || lod >= LODTierCount {
		lod = 0
	}
	return fmt.Sprintf("lod%d", lod)
}

// Vertex is a terrain patch vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Tier addresses one detail tier's index range within a MeshSet.
type Tier struct {
	GridSize   int
	IndexStart int
	IndexCount int
}

// MeshSet holds unit terrain patches for every detail tier in one shared
// vertex and index buffer. Each patch spans [-0.5, 0.5] on X and Z at
// height zero; the renderer scales it to a node's footprint and displaces
// it by heightfield samples.
type MeshSet struct {
	Vertices []Vertex
	Indices  []uint32
	Tiers    [LODTierCount]Tier
}

// BuildLODMeshes generates the patch grids for all detail tiers.
func BuildLODMeshes() *MeshSet {
	set := &MeshSet{}

	for lod, grid := range lodGridSizes {
		vtxStart := uint32(len(set.Vertices))
		idxStart := len(set.Indices)

		inv := 1.0 / float32(grid)

		for z := 0; z <= grid; z++ {
			w := float32(z) * inv
			for x := 0; x <= grid; x++ {
				u := float32(x) * inv

				set.Vertices = append(set.Vertices, Vertex{
					Position: [3]float32{u - 0.5, 0, w - 0.5},
					Normal:   [3]float32{0, 1, 0},
					TexCoord: [2]float32{u, w},
				})
			}
		}

		rowStride := uint32(grid + 1)
		for z := 0; z < grid; z++ {
			for x := 0; x < grid; x++ {
				i0 := vtxStart + uint32(z)*rowStride + uint32(x)
				i1 := i0 + 1
				i2 := vtxStart + uint32(z+1)*rowStride + uint32(x)
				i3 := i2 + 1

				set.Indices = append(set.Indices,
					i0, i2, i1,
					i1, i2, i3,
				)
			}
		}

		set.Tiers[lod] = Tier{
			GridSize:   grid,
			IndexStart: idxStart,
			IndexCount: grid * grid * 6,
		}
	}

	return set
}
