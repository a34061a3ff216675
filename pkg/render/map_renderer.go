// pkg/render/map_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bean-defense/pkg/pathmap"
)

// MapRenderer pre-renders a map's terrain once and blits it every frame.
type MapRenderer struct {
	m         *pathmap.Map
	colors    MapColors
	width     int
	height    int
	pathWidth float32
	fillImg   *ebiten.Image
	vs        []ebiten.Vertex
	is        []uint16
	mapImage  *ebiten.Image
}

// NewMapRenderer prepares the background of m. pathWidth is the drawn width of the road.
func NewMapRenderer(m *pathmap.Map, colors MapColors, width, height int, pathWidth float32) *MapRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &MapRenderer{
		m:         m,
		colors:    colors,
		width:     width,
		height:    height,
		pathWidth: pathWidth,
		fillImg:   fillImg,
		vs:        make([]ebiten.Vertex, 0, 256),
		is:        make([]uint16, 0, 256),
		mapImage:  ebiten.NewImage(width, height),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage перерисовывает задник.
func (r *MapRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	for _, rect := range r.m.Restricted {
		vector.DrawFilledRect(r.mapImage, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), r.colors.WaterColor, false)
		vector.StrokeRect(r.mapImage, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), r.colors.StrokeWidth, LightenColor(r.colors.WaterColor, 40), false)
	}

	points := r.m.Path.Points()
	if len(points) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	// кромка чуть темнее дороги
	r.strokePath(&path, r.pathWidth+r.colors.StrokeWidth*2, DarkenColor(r.colors.PathColor))
	r.strokePath(&path, r.pathWidth, r.colors.PathColor)
}

func (r *MapRenderer) strokePath(path *vector.Path, width float32, c color.RGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	for i := range r.vs {
		r.vs[i].SrcX = 0
		r.vs[i].SrcY = 0
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	r.mapImage.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw blits the pre-rendered background.
func (r *MapRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}
