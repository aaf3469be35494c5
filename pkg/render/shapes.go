package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fillImg — белый пиксель-источник для DrawTriangles. Создаётся при первой
// отрисовке, а не при инициализации пакета.
var fillImg *ebiten.Image

func sourceImage() *ebiten.Image {
	if fillImg == nil {
		fillImg = ebiten.NewImage(1, 1)
		fillImg.Fill(color.White)
	}
	return fillImg
}

// FillPath заливает замкнутый контур одним цветом.
func FillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	paint(vs, clr)
	dst.DrawTriangles(vs, is, sourceImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokePath обводит контур линией толщины width.
func StrokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	paint(vs, clr)
	dst.DrawTriangles(vs, is, sourceImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// TrianglePath — треугольник, вписанный в прямоугольник (x, y, w, h).
// up задаёт, куда смотрит вершина.
func TrianglePath(x, y, w, h float32, up bool) *vector.Path {
	var path vector.Path
	if up {
		path.MoveTo(x+w/2, y)
		path.LineTo(x+w, y+h)
		path.LineTo(x, y+h)
	} else {
		path.MoveTo(x, y)
		path.LineTo(x+w, y)
		path.LineTo(x+w/2, y+h)
	}
	path.Close()
	return &path
}

// EllipsePath — эллипс, вписанный в прямоугольник (x, y, w, h).
func EllipsePath(x, y, w, h float32) *vector.Path {
	const segments = 24
	var path vector.Path
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		px := cx + rx*float32(math.Cos(angle))
		py := cy + ry*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	return &path
}

func paint(vs []ebiten.Vertex, clr color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
}
