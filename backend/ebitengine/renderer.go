// Package ebitengine provides the ebiten host for the demo: a renderer
// bridge that draws Dear ImGui draw data with DrawTriangles and an input
// capture that polls ebiten's input state.
package ebitengine

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imguidemo"
)

// FontTextureID is the texture id assigned to Dear ImGui's font atlas.
const FontTextureID imgui.TextureID = 1

// Renderer draws Dear ImGui draw data onto ebiten images.
type Renderer struct {
	textures map[imgui.TextureID]*ebiten.Image
	nextID   imgui.TextureID

	layout    vertexLayout
	indexSize int

	// Scratch buffers reused across frames.
	vertices []ebiten.Vertex
	scaled   []ebiten.Vertex
	indices  []uint16

	options ebiten.DrawTrianglesOptions
}

// NewRenderer uploads the font atlas of io and creates the bridge.
func NewRenderer(io imgui.IO) (*Renderer, error) {
	r := &Renderer{
		textures:  make(map[imgui.TextureID]*ebiten.Image),
		nextID:    FontTextureID + 1,
		layout:    imguiVertexLayout(),
		indexSize: imgui.IndexBufferLayout(),
	}
	r.options.Filter = ebiten.FilterLinear

	if r.indexSize != 2 && r.indexSize != 4 {
		return nil, fmt.Errorf("unsupported index size %d", r.indexSize)
	}

	atlas := io.Fonts().TextureDataRGBA32()
	if atlas == nil || atlas.Width <= 0 || atlas.Height <= 0 {
		return nil, fmt.Errorf("font atlas is empty")
	}

	// image.RGBA holds premultiplied alpha; the atlas is straight alpha.
	pix := make([]byte, atlas.Width*atlas.Height*4)
	copy(pix, bytesOf(atlas.Pixels, len(pix)))
	imguidemo.Premultiply(pix)

	img := &image.RGBA{
		Pix:    pix,
		Stride: atlas.Width * 4,
		Rect:   image.Rect(0, 0, atlas.Width, atlas.Height),
	}
	r.textures[FontTextureID] = ebiten.NewImageFromImage(img)
	io.Fonts().SetTextureID(FontTextureID)

	return r, nil
}

// AddTexture registers an image that widgets can show with imgui.Image.
func (r *Renderer) AddTexture(img image.Image) imgui.TextureID {
	id := r.nextID
	r.nextID++
	r.textures[id] = ebiten.NewImageFromImage(img)
	return id
}

// RemoveTexture releases a texture registered with AddTexture.
func (r *Renderer) RemoveTexture(id imgui.TextureID) {
	if id == FontTextureID {
		return
	}
	if img, ok := r.textures[id]; ok {
		img.Deallocate()
		delete(r.textures, id)
	}
}

// Texture returns the image registered under id.
func (r *Renderer) Texture(id imgui.TextureID) (*ebiten.Image, bool) {
	img, ok := r.textures[id]
	return img, ok
}

// Draw renders drawData onto screen. The draw data must come from the
// current frame: its buffers are owned by Dear ImGui.
func (r *Renderer) Draw(screen *ebiten.Image, drawData imgui.DrawData) {
	if !drawData.Valid() {
		return
	}
	bounds := screen.Bounds()

	for _, list := range drawData.CommandLists() {
		vb, vbSize := list.VertexBuffer()
		r.vertices = decodeVertices(r.vertices, bytesOf(vb, vbSize), r.layout)
		ib, ibSize := list.IndexBuffer()
		r.indices = decodeIndices(r.indices, bytesOf(ib, ibSize), r.indexSize)

		var scaledFor *ebiten.Image
		offset := 0
		for _, cmd := range list.Commands() {
			count := cmd.ElementCount()
			start := offset
			offset += count

			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}

			tex, ok := r.textures[cmd.TextureID()]
			if !ok || count == 0 || start+count > len(r.indices) {
				continue
			}
			clip := clipRectangle(cmd.ClipRect(), bounds)
			if clip.Empty() {
				continue
			}

			if tex != scaledFor {
				size := tex.Bounds().Size()
				r.scaled = scaleUV(r.scaled, r.vertices, float32(size.X), float32(size.Y))
				scaledFor = tex
			}

			dst := screen.SubImage(clip).(*ebiten.Image)
			dst.DrawTriangles(r.scaled, r.indices[start:start+count], tex, &r.options)
		}
	}
}

// Dispose releases every texture, including the font atlas.
func (r *Renderer) Dispose() {
	for id, img := range r.textures {
		img.Deallocate()
		delete(r.textures, id)
	}
}
