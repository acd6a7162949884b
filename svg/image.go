// seehuhn.de/go/emf - a library for reading EMF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // BIJPEG bitmaps
	"image/png"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/record"
)

// decodeDIB converts a device-independent bitmap into an image.
func decodeDIB(dib *gdi.DIB) (image.Image, error) {
	switch dib.Header.Compression {
	case gdi.BIJPEG, gdi.BIPNG:
		img, _, err := image.Decode(bytes.NewReader(dib.Bits))
		return img, err
	}
	return bmp.Decode(bytes.NewReader(dib.BMPFile()))
}

// toRGBA copies the part src of img into a new image, with the origin at
// the top left corner.
func toRGBA(img image.Image, src image.Rectangle) *image.RGBA {
	res := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	xdraw.Draw(res, res.Bounds(), img, src.Min, xdraw.Src)
	return res
}

func pngURL(img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawImage draws the part src of a bitmap.  The matrix m maps the pixel
// coordinates of src, with the origin at the top left corner, to logical
// coordinates.  If adjust is not nil, it is applied to the pixels before
// the image is encoded.
func (p *Player) drawImage(tp record.Type, dib *gdi.DIB, src image.Rectangle, m matrix.Matrix, adjust func(*image.RGBA), extra string) {
	if dib == nil || p.ctx.Drawing.InPath {
		return
	}
	if !p.opt.EmbedImages {
		p.drop(tp, "images are disabled")
		return
	}
	img, err := decodeDIB(dib)
	if err != nil {
		p.drop(tp, "cannot decode bitmap: "+err.Error())
		return
	}

	b := img.Bounds()
	full := src.Add(b.Min)
	clipped := full.Intersect(b)
	if clipped.Empty() {
		return
	}
	if off := clipped.Min.Sub(full.Min); off != (image.Point{}) {
		m = matrix.Translate(float64(off.X), float64(off.Y)).Mul(m)
	}

	rgba := toRGBA(img, clipped)
	if adjust != nil {
		adjust(rgba)
	}
	href, err := pngURL(rgba)
	if err != nil {
		p.drop(tp, err.Error())
		return
	}

	t := m.Mul(p.ctx.DeviceMatrix())
	fmt.Fprintf(&p.body,
		"<image width=\"%d\" height=\"%d\" preserveAspectRatio=\"none\" transform=\"matrix(%s %s %s %s %s %s)\"%s%s href=\"%s\"/>\n",
		clipped.Dx(), clipped.Dy(),
		p.num(t[0]), p.num(t[1]), p.num(t[2]), p.num(t[3]), p.num(t[4]), p.num(t[5]),
		extra, p.clipAttr(), href)
}

// fillArea paints a rectangle for the bit-block transfers without a
// source bitmap.
func (p *Player) fillArea(tp record.Type, rop gdi.TernaryRasterOp, a record.Area) {
	if p.ctx.Drawing.InPath {
		return
	}
	var paint string
	switch rop {
	case gdi.PatCopy:
		paint = p.paint(p.brush())
	case gdi.Blackness:
		paint = gdi.Black.Hex()
	case gdi.Whiteness:
		paint = gdi.White.Hex()
	default:
		p.drop(tp, fmt.Sprintf("raster operation %#08x", uint32(rop)))
		return
	}
	if paint == "none" {
		return
	}

	x0, y0 := a.X, a.Y
	x1, y1 := a.X+a.Width, a.Y+a.Height
	w := p.newPath()
	w.MoveTo(p.dev(vecOf(x0, y0)))
	w.LineTo(p.dev(vecOf(x1, y0)))
	w.LineTo(p.dev(vecOf(x1, y1)))
	w.LineTo(p.dev(vecOf(x0, y1)))
	w.Close()
	fmt.Fprintf(&p.body, "<path d=\"%s\" fill=\"%s\"%s/>\n", w.String(), paint, p.clipAttr())
}

// stretch returns the matrix which maps a source rectangle of size (sw, sh)
// onto the destination area.
func stretch(a record.Area, sw, sh int32) matrix.Matrix {
	sx, sy := 1.0, 1.0
	if sw != 0 && sh != 0 {
		sx = float64(a.Width) / float64(sw)
		sy = float64(a.Height) / float64(sh)
	}
	return matrix.Scale(sx, sy).Mul(matrix.Translate(float64(a.X), float64(a.Y)))
}

func srcRect(x, y, w, h int32) image.Rectangle {
	return image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h))
}

func (p *Player) BitBlt(r *record.BitBlt) error {
	if r.Source == nil || r.Source.Bitmap == nil {
		p.fillArea(record.EMRBitBlt, r.ROP, r.Dest)
		return nil
	}
	d := r.Dest
	src := srcRect(r.Source.X, r.Source.Y, d.Width, d.Height)
	m := matrix.Translate(float64(d.X), float64(d.Y))
	p.drawImage(record.EMRBitBlt, r.Source.Bitmap, src, m, nil, "")
	return nil
}

func (p *Player) StretchBlt(r *record.StretchBlt) error {
	if r.Source == nil || r.Source.Bitmap == nil {
		p.fillArea(record.EMRStretchBlt, r.ROP, r.Dest)
		return nil
	}
	sz := r.SourceSize
	src := srcRect(r.Source.X, r.Source.Y, sz.CX, sz.CY)
	p.drawImage(record.EMRStretchBlt, r.Source.Bitmap, src, stretch(r.Dest, sz.CX, sz.CY), nil, "")
	return nil
}

func (p *Player) MaskBlt(r *record.MaskBlt) error {
	if r.Source == nil || r.Source.Bitmap == nil {
		p.fillArea(record.EMRMaskBlt, gdi.TernaryRasterOp(r.ROP4&0x00FFFFFF), r.Dest)
		return nil
	}
	d := r.Dest
	src := srcRect(r.Source.X, r.Source.Y, d.Width, d.Height)
	m := matrix.Translate(float64(d.X), float64(d.Y))
	p.drawImage(record.EMRMaskBlt, r.Source.Bitmap, src, m, p.maskAlpha(r.Mask), "")
	return nil
}

func (p *Player) PlgBlt(r *record.PlgBlt) error {
	if r.Source == nil || r.Source.Bitmap == nil {
		return nil
	}
	sz := r.SourceSize
	if sz.CX == 0 || sz.CY == 0 {
		return nil
	}

	// The three destination points are the images of the upper-left,
	// upper-right and lower-left corners of the source rectangle.
	p0, p1, p2 := r.Dest[0].Vec(), r.Dest[1].Vec(), r.Dest[2].Vec()
	w, h := float64(sz.CX), float64(sz.CY)
	m := matrix.Matrix{
		(p1.X - p0.X) / w, (p1.Y - p0.Y) / w,
		(p2.X - p0.X) / h, (p2.Y - p0.Y) / h,
		p0.X, p0.Y,
	}
	src := srcRect(r.Source.X, r.Source.Y, sz.CX, sz.CY)
	p.drawImage(record.EMRPlgBlt, r.Source.Bitmap, src, m, p.maskAlpha(r.Mask), "")
	return nil
}

// dibRect converts a source rectangle of a DIB record into top-down
// pixel coordinates.  For bottom-up bitmaps, the y coordinate of these
// records is measured from the bottom of the image.
func dibRect(dib *gdi.DIB, x, y, w, h int32) image.Rectangle {
	if dib.Header.Height > 0 {
		y = int32(dib.Height()) - y - h
	}
	return srcRect(x, y, w, h)
}

func (p *Player) SetDIBitsToDevice(r *record.SetDIBitsToDevice) error {
	if r.Bitmap == nil {
		return nil
	}
	sz := r.SrcSize
	y := r.Src.Y - int32(r.StartScan)
	src := dibRect(r.Bitmap, r.Src.X, y, sz.CX, sz.CY)
	m := matrix.Translate(float64(r.Dest.X), float64(r.Dest.Y))
	p.drawImage(record.EMRSetDIBitsToDevice, r.Bitmap, src, m, nil, "")
	return nil
}

func (p *Player) StretchDIBits(r *record.StretchDIBits) error {
	dest := record.Area{X: r.Dest.X, Y: r.Dest.Y, Width: r.DestSize.CX, Height: r.DestSize.CY}
	if r.Bitmap == nil {
		p.fillArea(record.EMRStretchDIBits, r.ROP, dest)
		return nil
	}
	sz := r.SrcSize
	src := dibRect(r.Bitmap, r.Src.X, r.Src.Y, sz.CX, sz.CY)
	p.drawImage(record.EMRStretchDIBits, r.Bitmap, src, stretch(dest, sz.CX, sz.CY), nil, "")
	return nil
}

func (p *Player) AlphaBlend(r *record.AlphaBlend) error {
	if r.Source == nil || r.Source.Bitmap == nil {
		return nil
	}
	sz := r.SourceSize
	src := srcRect(r.Source.X, r.Source.Y, sz.CX, sz.CY)

	var adjust func(*image.RGBA)
	if r.Blend.AlphaFormat == 0 {
		adjust = opaque
	}
	var extra string
	if a := r.Blend.SourceConstantAlpha; a < 255 {
		extra = fmt.Sprintf(` opacity="%s"`, p.num(float64(a)/255))
	}
	p.drawImage(record.EMRAlphaBlend, r.Source.Bitmap, src, stretch(r.Dest, sz.CX, sz.CY), adjust, extra)
	return nil
}

func (p *Player) TransparentBlt(r *record.TransparentBlt) error {
	if r.Source == nil || r.Source.Bitmap == nil {
		return nil
	}
	sz := r.SourceSize
	src := srcRect(r.Source.X, r.Source.Y, sz.CX, sz.CY)
	key := r.Transparent
	adjust := func(img *image.RGBA) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := img.RGBAAt(x, y)
				if c.R == key.Red && c.G == key.Green && c.B == key.Blue {
					img.SetRGBA(x, y, color.RGBA{})
				}
			}
		}
	}
	p.drawImage(record.EMRTransparentBlt, r.Source.Bitmap, src, stretch(r.Dest, sz.CX, sz.CY), adjust, "")
	return nil
}

// opaque sets the alpha channel of all pixels to 255.
func opaque(img *image.RGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
}

// maskAlpha returns a function which makes all pixels transparent where
// the mask bitmap is black.  If the mask is missing or cannot be decoded,
// nil is returned.
func (p *Player) maskAlpha(mask *record.BitmapMask) func(*image.RGBA) {
	if mask == nil || mask.Bitmap == nil {
		return nil
	}
	m, err := decodeDIB(mask.Bitmap)
	if err != nil {
		p.logger.Debug("cannot decode bitmap mask", "error", err)
		return nil
	}
	origin := m.Bounds().Min.Add(image.Pt(int(mask.X), int(mask.Y)))
	return func(img *image.RGBA) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				g := color.GrayModel.Convert(m.At(origin.X+x, origin.Y+y)).(color.Gray)
				if g.Y < 128 {
					img.SetRGBA(x, y, color.RGBA{})
				}
			}
		}
	}
}

type patternKey struct {
	dib    *gdi.DIB
	fg, bg gdi.ColorRef
}

// pattern returns the id of an SVG pattern for a bitmap brush.
func (p *Player) pattern(b gdi.DIBPatternBrush) (string, bool) {
	if b.Bitmap == nil || !p.opt.EmbedImages {
		return "", false
	}
	key := patternKey{dib: b.Bitmap}
	if b.Mono {
		key.fg, key.bg = p.ctx.Drawing.TextColor, p.ctx.Drawing.BkColor
	}
	if id, ok := p.patterns[key]; ok {
		return id, true
	}

	img, err := decodeDIB(b.Bitmap)
	if err != nil {
		p.logger.Warn("cannot decode pattern brush", "error", err)
		return "", false
	}
	rgba := toRGBA(img, img.Bounds())
	if b.Mono {
		recolor(rgba, key.fg, key.bg)
	}
	href, err := pngURL(rgba)
	if err != nil {
		p.logger.Warn("cannot encode pattern brush", "error", err)
		return "", false
	}

	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	id := p.define("p",
		`<pattern id="%[1]s" width="%[2]d" height="%[3]d" patternUnits="userSpaceOnUse"><image width="%[2]d" height="%[3]d" href="%[4]s"/></pattern>`,
		w, h, href)
	p.patterns[key] = id
	return id, true
}

// recolor maps the black pixels of a monochrome bitmap to fg and the
// white pixels to bg.
func recolor(img *image.RGBA, fg, bg gdi.ColorRef) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := fg
			if g := color.GrayModel.Convert(img.RGBAAt(x, y)).(color.Gray); g.Y >= 128 {
				c = bg
			}
			img.SetRGBA(x, y, color.RGBA{R: c.Red, G: c.Green, B: c.Blue, A: 255})
		}
	}
}
