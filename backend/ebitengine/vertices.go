package ebitengine

import (
	"encoding/binary"
	"image"
	"math"
	"unsafe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/inkyblackness/imgui-go/v4"
)

// vertexLayout describes one Dear ImGui vertex: its size and the byte
// offsets of position (2 x float32), UV (2 x float32) and colour (RGBA8).
type vertexLayout struct {
	size, pos, uv, col int
}

func imguiVertexLayout() vertexLayout {
	size, pos, uv, col := imgui.VertexBufferLayout()
	return vertexLayout{size: size, pos: pos, uv: uv, col: col}
}

// bytesOf views a Dear ImGui buffer as bytes without copying.
// The view is only valid until the next imgui.NewFrame.
func bytesOf(ptr unsafe.Pointer, size int) []byte {
	if ptr == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), size)
}

func float32At(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// decodeVertices converts a raw vertex buffer into ebiten vertices with
// normalized UVs. A trailing partial vertex is ignored.
func decodeVertices(dst []ebiten.Vertex, buf []byte, l vertexLayout) []ebiten.Vertex {
	dst = dst[:0]
	if l.size <= 0 {
		return dst
	}

	for off := 0; off+l.size <= len(buf); off += l.size {
		v := buf[off : off+l.size]
		col := v[l.col : l.col+4]
		dst = append(dst, ebiten.Vertex{
			DstX:   float32At(v[l.pos:]),
			DstY:   float32At(v[l.pos+4:]),
			SrcX:   float32At(v[l.uv:]),
			SrcY:   float32At(v[l.uv+4:]),
			ColorR: float32(col[0]) / 255,
			ColorG: float32(col[1]) / 255,
			ColorB: float32(col[2]) / 255,
			ColorA: float32(col[3]) / 255,
		})
	}
	return dst
}

// decodeIndices converts a raw index buffer of 2- or 4-byte indices.
// ebiten takes 16-bit indices, so 4-byte values above 0xFFFF end the decode.
func decodeIndices(dst []uint16, buf []byte, size int) []uint16 {
	dst = dst[:0]
	switch size {
	case 2:
		for off := 0; off+2 <= len(buf); off += 2 {
			dst = append(dst, binary.LittleEndian.Uint16(buf[off:]))
		}
	case 4:
		for off := 0; off+4 <= len(buf); off += 4 {
			idx := binary.LittleEndian.Uint32(buf[off:])
			if idx > math.MaxUint16 {
				break
			}
			dst = append(dst, uint16(idx))
		}
	}
	return dst
}

// scaleUV copies src into dst with UVs scaled to texture pixels.
func scaleUV(dst, src []ebiten.Vertex, width, height float32) []ebiten.Vertex {
	dst = append(dst[:0], src...)
	for i := range dst {
		dst[i].SrcX *= width
		dst[i].SrcY *= height
	}
	return dst
}

// clipRectangle converts a Dear ImGui clip rectangle (min x, min y, max x,
// max y) into an integer rectangle covering it, limited to bounds.
func clipRectangle(clip imgui.Vec4, bounds image.Rectangle) image.Rectangle {
	// Not image.Rect: it would swap inverted corners into a valid rectangle.
	r := image.Rectangle{
		Min: image.Pt(int(math.Floor(float64(clip.X))), int(math.Floor(float64(clip.Y)))),
		Max: image.Pt(int(math.Ceil(float64(clip.Z))), int(math.Ceil(float64(clip.W)))),
	}
	return r.Intersect(bounds)
}
