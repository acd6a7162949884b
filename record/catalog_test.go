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

package record

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/internal/emftest"
	"seehuhn.de/go/emf/parser"
)

// bmi24 writes the BITMAPINFOHEADER of a 1x1 pixel, 24-bit bitmap with
// 4 bytes of pixel data (40 bytes).
func bmi24(r *emftest.Builder) {
	r.U32(40).I32(1, 1).U16(1, 24).U32(0, 4).I32(0, 0).U32(0, 0)
}

// bmiMono writes the bitmap info of a 1x1 pixel monochrome bitmap,
// including its two-entry color table (48 bytes).
func bmiMono(r *emftest.Builder) {
	r.U32(40).I32(1, 1).U16(1, 1).U32(0, 4).I32(0, 0).U32(2, 0)
	r.U32(0x000000, 0xFFFFFF)
}

// regionData writes a region consisting of a single rectangle (48 bytes).
func regionData(r *emftest.Builder) {
	r.U32(32, 1, 1, 16)
	r.I32(0, 0, 10, 10)
	r.I32(0, 0, 10, 10)
}

// logFont writes a LogFont (92 bytes).
func logFont(r *emftest.Builder, face string) {
	r.I32(-12, 0, 0, 0, gdi.FWNormal)
	r.Zero(8)
	r.UTF16(face, 64)
}

// logColorSpace writes a LogColorSpace with a file name field of the
// given size.
func logColorSpace(r *emftest.Builder, nameSize int) {
	r.U32(0x50534F43, 0x400, uint32(68+nameSize))
	r.U32(uint32(gdi.LCSsRGB), uint32(gdi.LCSGMImages))
	r.Zero(36)
	r.U32(0, 0, 0)
	r.Zero(nameSize)
}

// bitmapSource writes the source fields shared by the bit-block transfer
// records (56 bytes).
func bitmapSource(r *emftest.Builder, offBmi, cbBmi, offBits, cbBits uint32) {
	r.I32(0, 0)
	r.F32(1, 0, 0, 1, 0, 0)
	r.U32(0)
	r.U32(uint32(gdi.DIBRGBColors))
	r.U32(offBmi, cbBmi, offBits, cbBits)
}

func textScale(r *emftest.Builder) {
	r.U32(uint32(gdi.GMCompatible))
	r.F32(1, 1)
}

// polyTextOut writes the body of a EMR_POLYTEXTOUTA/W record with two
// strings.  The payloads are stored in a different order than the
// EmrText objects which refer to them.
func polyTextOut(wide bool) func(r *emftest.Builder) {
	return func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		textScale(r)
		r.U32(2)
		r.I32(1, 2)
		r.U32(2, 92, uint32(gdi.ETONoRect), 96)
		r.I32(3, 4)
		r.U32(1, 88, uint32(gdi.ETONoRect), 104)
		if wide {
			r.UTF16("c", 4)
			r.UTF16("ab", 4)
		} else {
			r.Bytes([]byte("c")).Pad()
			r.Bytes([]byte("ab")).Pad()
		}
		r.I32(5, 6, 7)
	}
}

// sampleBodies returns a valid record body for every record type which
// has a decoder, except for EMR_HEADER and EMR_EOF.
func sampleBodies() map[Type]func(r *emftest.Builder) {
	res := map[Type]func(r *emftest.Builder){}
	for _, tp := range polyTypes {
		res[tp] = func(r *emftest.Builder) {
			r.I32(0, 0, 1, 1)
			r.U32(2)
			r.I32(0, 0, 1, 1)
		}
	}
	for _, tp := range poly16Types {
		res[tp] = func(r *emftest.Builder) {
			r.I32(0, 0, 1, 1)
			r.U32(2)
			r.I16(0).I16(0).I16(1).I16(1)
		}
	}
	for _, tp := range polyPolyTypes {
		res[tp] = func(r *emftest.Builder) {
			r.I32(0, 0, 1, 1)
			r.U32(1, 2)
			r.U32(2)
			r.I32(0, 0, 1, 1)
		}
	}
	for _, tp := range polyPoly16Types {
		res[tp] = func(r *emftest.Builder) {
			r.I32(0, 0, 1, 1)
			r.U32(1, 2)
			r.U32(2)
			r.I16(0).I16(0).I16(1).I16(1)
		}
	}
	res[EMRPolyDraw] = func(r *emftest.Builder) {
		r.I32(0, 0, 1, 1)
		r.U32(2)
		r.I32(0, 0, 1, 1)
		r.U8(uint8(gdi.PTMoveTo)).U8(uint8(gdi.PTLineTo)).Pad()
	}
	res[EMRPolyDraw16] = func(r *emftest.Builder) {
		r.I32(0, 0, 1, 1)
		r.U32(2)
		r.I16(0).I16(0).I16(1).I16(1)
		r.U8(uint8(gdi.PTMoveTo)).U8(uint8(gdi.PTLineTo)).Pad()
	}
	for _, tp := range boxTypes {
		res[tp] = func(r *emftest.Builder) { r.I32(0, 0, 10, 10) }
	}
	res[EMRRoundRect] = func(r *emftest.Builder) { r.I32(0, 0, 10, 10, 2, 2) }
	for _, tp := range arcBoxTypes {
		res[tp] = func(r *emftest.Builder) { r.I32(0, 0, 10, 10, 10, 5, 5, 0) }
	}
	res[EMRAngleArc] = func(r *emftest.Builder) {
		r.I32(5, 5)
		r.U32(5)
		r.F32(0, 90)
	}
	res[EMRLineTo] = func(r *emftest.Builder) { r.I32(1, 1) }
	res[EMRSetPixelV] = func(r *emftest.Builder) { r.I32(1, 1).U32(0xFF) }
	res[EMRExtFloodFill] = func(r *emftest.Builder) {
		r.I32(1, 1).U32(0xFF, uint32(gdi.FloodFillSurface))
	}
	for _, tp := range pathBoundsTypes {
		res[tp] = func(r *emftest.Builder) { r.I32(0, 0, 10, 10) }
	}
	res[EMRFillRgn] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.U32(48, 1)
		regionData(r)
	}
	res[EMRFrameRgn] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.U32(48, 1)
		r.I32(1, 1)
		regionData(r)
	}
	for _, tp := range paintRgnTypes {
		res[tp] = func(r *emftest.Builder) {
			r.I32(0, 0, 10, 10)
			r.U32(48)
			regionData(r)
		}
	}
	res[EMRGradientFill] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.U32(2, 1, uint32(gdi.GradientFillRectH))
		r.I32(0, 0).U16(0, 0, 0, 0)
		r.I32(10, 10).U16(0xFF00, 0, 0, 0)
		r.U32(0, 1)
	}

	for _, tp := range noParamsTypes {
		res[tp] = nil
	}
	for _, tp := range setExtentTypes {
		res[tp] = func(r *emftest.Builder) { r.I32(10, 10) }
	}
	for _, tp := range setOriginTypes {
		res[tp] = func(r *emftest.Builder) { r.I32(1, 2) }
	}
	for _, tp := range scaleExtentTypes {
		res[tp] = func(r *emftest.Builder) { r.I32(1, 1, 1, 1) }
	}
	res[EMRSetMapperFlags] = func(r *emftest.Builder) { r.U32(0) }
	res[EMRSetMapMode] = func(r *emftest.Builder) { r.U32(uint32(gdi.MapModeText)) }
	res[EMRSetBkMode] = func(r *emftest.Builder) { r.U32(uint32(gdi.Transparent)) }
	res[EMRSetPolyFillMode] = func(r *emftest.Builder) { r.U32(uint32(gdi.Winding)) }
	res[EMRSetROP2] = func(r *emftest.Builder) { r.U32(uint32(gdi.R2CopyPen)) }
	res[EMRSetStretchBltMode] = func(r *emftest.Builder) { r.U32(uint32(gdi.StretchDeleteScans)) }
	res[EMRSetTextAlign] = func(r *emftest.Builder) { r.U32(uint32(gdi.TABaseline)) }
	res[EMRSetColorAdjustment] = func(r *emftest.Builder) {
		r.U16(24, 0, 0, 10000, 10000, 10000, 0, 10000)
		r.U16(0, 0, 0, 0)
	}
	for _, tp := range setColorTypes {
		res[tp] = func(r *emftest.Builder) { r.U32(0x00FF0000) }
	}
	res[EMROffsetClipRgn] = func(r *emftest.Builder) { r.I32(1, 1) }
	res[EMRMoveToEx] = func(r *emftest.Builder) { r.I32(1, 1) }
	for _, tp := range clipRectTypes {
		res[tp] = func(r *emftest.Builder) { r.I32(0, 0, 10, 10) }
	}
	res[EMRRestoreDC] = func(r *emftest.Builder) { r.I32(-1) }
	res[EMRSetWorldTransform] = func(r *emftest.Builder) { r.F32(1, 0, 0, 1, 0, 0) }
	res[EMRModifyWorldTransform] = func(r *emftest.Builder) {
		r.F32(1, 0, 0, 1, 0, 0)
		r.U32(uint32(gdi.MWTLeftMultiply))
	}
	res[EMRSetArcDirection] = func(r *emftest.Builder) { r.U32(uint32(gdi.Clockwise)) }
	res[EMRSetMiterLimit] = func(r *emftest.Builder) { r.U32(10) }
	res[EMRSelectClipPath] = func(r *emftest.Builder) { r.U32(uint32(gdi.RgnCopy)) }
	res[EMRExtSelectClipRgn] = func(r *emftest.Builder) {
		r.U32(48, uint32(gdi.RgnAnd))
		regionData(r)
	}
	res[EMRSetICMMode] = func(r *emftest.Builder) { r.U32(uint32(gdi.ICMOn)) }
	res[EMRSetLayout] = func(r *emftest.Builder) { r.U32(uint32(gdi.LayoutRTL)) }
	res[EMRSetTextJustification] = func(r *emftest.Builder) { r.I32(10, 2) }
	res[EMRForceUFIMapping] = func(r *emftest.Builder) { r.U32(1, 2) }
	res[EMRSetLinkedUFIs] = func(r *emftest.Builder) {
		r.U32(1)
		r.U32(1, 2)
		r.Zero(8)
	}
	res[EMRPixelFormat] = func(r *emftest.Builder) {
		r.U16(gdi.PixelFormatDescriptorSize, 1)
		r.U32(uint32(gdi.PFDSupportGDI))
		r.Zero(20)
		r.U32(0, 0, 0)
	}
	res[EMRSetICMProfileA] = func(r *emftest.Builder) {
		r.U32(0, 4, 0)
		r.Bytes([]byte("abc\x00"))
	}
	res[EMRSetICMProfileW] = func(r *emftest.Builder) {
		r.U32(SetICMProfileEmbedded, 4, 4)
		r.UTF16("a", 4)
		r.Bytes([]byte{1, 2, 3, 4})
	}
	res[EMRColorMatchToProfileW] = func(r *emftest.Builder) {
		r.U32(uint32(gdi.CSEnable), 0, 4, 0)
		r.UTF16("a", 4)
	}
	res[EMRColorCorrectPalette] = func(r *emftest.Builder) { r.U32(1, 0, 1, 0) }

	for _, tp := range objectIndexTypes {
		res[tp] = func(r *emftest.Builder) { r.U32(1) }
	}
	res[EMRSelectObject] = func(r *emftest.Builder) { r.U32(uint32(gdi.BlackPen)) }
	res[EMRCreatePen] = func(r *emftest.Builder) {
		r.U32(1, uint32(gdi.PSSolid))
		r.I32(1, 0)
		r.U32(0)
	}
	res[EMRCreateBrushIndirect] = func(r *emftest.Builder) {
		r.U32(1, uint32(gdi.BSHatched), 0xFF, uint32(gdi.HSCross))
	}
	res[EMRCreatePalette] = func(r *emftest.Builder) {
		r.U32(1)
		r.U16(gdi.LogPaletteVersion, 1)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRSetPaletteEntries] = func(r *emftest.Builder) {
		r.U32(1, 0, 1)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRResizePalette] = func(r *emftest.Builder) { r.U32(1, 16) }
	res[EMRExtCreateFontIndirectW] = func(r *emftest.Builder) {
		r.U32(1)
		logFont(r, "Arial")
	}
	res[EMRCreateMonoBrush] = func(r *emftest.Builder) {
		r.U32(1, uint32(gdi.DIBRGBColors))
		r.U32(32, 48, 80, 4)
		bmiMono(r)
		r.U32(0x80000000)
	}
	res[EMRCreateDIBPatternBrushPt] = func(r *emftest.Builder) {
		r.U32(1, uint32(gdi.DIBRGBColors))
		r.U32(32, 40, 72, 4)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRExtCreatePen] = func(r *emftest.Builder) {
		r.U32(1)
		r.U32(52, 40, 92, 4)
		r.U32(uint32(gdi.PSGeometric|gdi.PSEndCapFlat), 3, uint32(gdi.BSDIBPatternPT))
		r.U16(uint16(gdi.DIBRGBColors), 0)
		r.U32(0) // hatch
		r.U32(0) // style entries
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRCreateColorSpace] = func(r *emftest.Builder) {
		r.U32(1)
		logColorSpace(r, 260)
	}
	res[EMRCreateColorSpaceW] = func(r *emftest.Builder) {
		r.U32(1)
		logColorSpace(r, 520)
		r.U32(CreateColorSpaceEmbedded, 4)
		r.Bytes([]byte{1, 2, 3, 4})
	}

	res[EMRBitBlt] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 10, 10)
		r.U32(uint32(gdi.SrcCopy))
		bitmapSource(r, 100, 40, 140, 4)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRStretchBlt] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 10, 10)
		r.U32(uint32(gdi.SrcCopy))
		bitmapSource(r, 108, 40, 148, 4)
		r.I32(1, 1)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRMaskBlt] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 10, 10)
		r.U32(0xCCAA0020)
		bitmapSource(r, 128, 40, 168, 4)
		r.I32(0, 0)
		r.U32(uint32(gdi.DIBRGBColors))
		r.U32(172, 48, 220, 4)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
		bmiMono(r)
		r.U32(0x80000000)
	}
	res[EMRPlgBlt] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 10, 0, 0, 10)
		r.I32(0, 0)
		r.I32(1, 1)
		r.F32(1, 0, 0, 1, 0, 0)
		r.U32(0)
		r.U32(uint32(gdi.DIBRGBColors))
		r.U32(140, 40, 180, 4)
		r.I32(0, 0)
		r.U32(uint32(gdi.DIBRGBColors))
		r.U32(0, 0, 0, 0)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRSetDIBitsToDevice] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 0, 0, 1, 1)
		r.U32(76, 40, 116, 4)
		r.U32(uint32(gdi.DIBRGBColors), 0, 1)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRStretchDIBits] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 0, 0, 1, 1)
		r.U32(80, 40, 120, 4)
		r.U32(uint32(gdi.DIBRGBColors), uint32(gdi.SrcCopy))
		r.I32(10, 10)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRAlphaBlend] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 10, 10)
		r.U8(0).U8(0).U8(128).U8(0)
		bitmapSource(r, 108, 40, 148, 4)
		r.I32(1, 1)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}
	res[EMRTransparentBlt] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.I32(0, 0, 10, 10)
		r.U32(0x00FFFFFF)
		bitmapSource(r, 108, 40, 148, 4)
		r.I32(1, 1)
		bmi24(r)
		r.Bytes([]byte{1, 2, 3, 0})
	}

	for _, tp := range extTextOutTypes {
		wide := tp == EMRExtTextOutW
		res[tp] = func(r *emftest.Builder) {
			r.I32(0, 0, 20, 10)
			textScale(r)
			r.I32(5, 6)
			r.U32(2, 76, uint32(gdi.ETOOpaque))
			r.I32(0, 0, 20, 10)
			r.U32(80)
			if wide {
				r.UTF16("Hi", 4)
			} else {
				r.Bytes([]byte("Hi")).Pad()
			}
			r.I32(7, 8)
		}
	}
	res[EMRPolyTextOutA] = polyTextOut(false)
	res[EMRPolyTextOutW] = polyTextOut(true)
	res[EMRSmallTextOut] = func(r *emftest.Builder) {
		r.I32(1, 2)
		r.U32(2, 0)
		textScale(r)
		r.I32(0, 0, 20, 10)
		r.UTF16("ab", 4)
	}

	res[EMRComment] = func(r *emftest.Builder) {
		r.U32(4)
		r.Bytes([]byte("abcd"))
	}
	res[EMRDrawEscape] = func(r *emftest.Builder) {
		r.U32(gdi.EscapeEncapsulatedPostScript, 36)
		r.U32(36, 1)
		r.I32(0, 0, 160, 0, 0, 160)
		r.Bytes([]byte("%!PS"))
	}
	res[EMRExtEscape] = func(r *emftest.Builder) {
		r.U32(1, 4)
		r.Bytes([]byte{1, 2, 3, 4})
	}
	res[EMRNamedEscape] = func(r *emftest.Builder) {
		r.U32(1, 8, 4)
		r.UTF16("drv", 8)
		r.Bytes([]byte{1, 2, 3, 4})
	}
	res[EMRGLSRecord] = func(r *emftest.Builder) {
		r.U32(4)
		r.Bytes([]byte{1, 2, 3, 4})
	}
	res[EMRGLSBoundedRecord] = func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)
		r.U32(4)
		r.Bytes([]byte{1, 2, 3, 4})
	}
	return res
}

// TestAllRecordTypes decodes one record of every type which has a decoder
// and checks that exactly the declared number of bytes is consumed.
func TestAllRecordTypes(t *testing.T) {
	bodies := sampleBodies()
	for tp := EMRHeader; tp <= lastType; tp++ {
		if decoders[tp] == nil {
			continue
		}
		var data []byte
		switch tp {
		case EMRHeader:
			data = (&emftest.Builder{}).Header([4]int32{0, 0, 10, 10}, [4]int32{0, 0, 100, 100}).Data()
		case EMREOF:
			data = (&emftest.Builder{}).EOF().Data()
		default:
			body, ok := bodies[tp]
			if !ok {
				t.Errorf("%s: no sample record", tp)
				continue
			}
			data = build(tp, body)
		}
		t.Run(tp.String(), func(t *testing.T) {
			if _, err := decodeOne(t, data); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestSharedDecoderType(t *testing.T) {
	cases := []struct {
		dec decoder
		tp  Type
	}{
		{decodePoly, EMRPolygon16},
		{decodeBox, EMRRoundRect},
		{decodeNoParams, EMRRestoreDC},
		{decodeSetColor, EMRSetTextAlign},
		{decodeObjectIndex, EMRCreatePen},
		{decodeExtTextOut, EMRPolyTextOutW},
	}
	for _, c := range cases {
		t.Run(c.tp.String(), func(t *testing.T) {
			b := emftest.Body(make([]byte, 64))
			rec := c.dec(c.tp, b)
			if rec != nil || !errors.Is(b.Err(), parser.ErrUnexpectedPattern) {
				t.Errorf("got %v, %v", rec, b.Err())
			}
		})
	}
}

func TestPolyTextOut(t *testing.T) {
	for _, tp := range polyTextOutTypes {
		t.Run(tp.String(), func(t *testing.T) {
			rec, err := decodeOne(t, build(tp, polyTextOut(tp == EMRPolyTextOutW)))
			if err != nil {
				t.Fatal(err)
			}
			want := &PolyTextOut{
				Type:      tp,
				Bounds:    gdi.RectL{Right: 10, Bottom: 10},
				TextScale: TextScale{GraphicsMode: gdi.GMCompatible, ExScale: 1, EyScale: 1},
				Texts: []*EmrText{
					{
						Reference: gdi.PointL{X: 1, Y: 2},
						Options:   gdi.ETONoRect,
						Text:      "ab",
						Dx:        []int32{5, 6},
					},
					{
						Reference: gdi.PointL{X: 3, Y: 4},
						Options:   gdi.ETONoRect,
						Text:      "c",
						Dx:        []int32{7},
					},
				},
			}
			if d := cmp.Diff(want, rec); d != "" {
				t.Error(d)
			}
		})
	}
}

// fontExDv writes a LogFontExDv with the given design vector.
func fontExDv(r *emftest.Builder, axes ...int32) {
	logFont(r, "Minion")
	r.UTF16("Minion Regular", 128)
	r.UTF16("Regular", 64)
	r.UTF16("Western", 64)
	r.U32(0x08007664, uint32(len(axes)))
	r.I32(axes...)
}

func TestExtCreateFontIndirectW(t *testing.T) {
	axes16 := make([]int32, gdi.MaxDesignAxes)
	for i := range axes16 {
		axes16[i] = int32(i)
	}

	t.Run("LogFont", func(t *testing.T) {
		rec, err := decodeOne(t, build(EMRExtCreateFontIndirectW, func(r *emftest.Builder) {
			r.U32(1)
			logFont(r, "Arial")
		}))
		if err != nil {
			t.Fatal(err)
		}
		want := &ExtCreateFontIndirectW{
			Index:   1,
			LogFont: &gdi.LogFont{Height: -12, Weight: gdi.FWNormal, FaceName: "Arial"},
		}
		if d := cmp.Diff(want, rec); d != "" {
			t.Error(d)
		}
	})

	t.Run("LogFontPanose", func(t *testing.T) {
		rec, err := decodeOne(t, build(EMRExtCreateFontIndirectW, func(r *emftest.Builder) {
			r.U32(2)
			logFont(r, "Arial")
			r.UTF16("Arial Bold", 128)
			r.UTF16("Bold", 64)
			r.U32(0, 0, 0, 0, 0x4D534654, 0)
			r.U8(2).U8(11).Zero(8)
			r.Zero(2)
		}))
		if err != nil {
			t.Fatal(err)
		}
		font := rec.(*ExtCreateFontIndirectW)
		lf := font.LogFontPanose
		if lf == nil || font.LogFont != nil || font.LogFontExDv != nil {
			t.Fatalf("wrong variant %+v", font)
		}
		if font.Font().FaceName != "Arial" || lf.FullName != "Arial Bold" || lf.Style != "Bold" {
			t.Errorf("wrong names %+v", lf)
		}
		if lf.VendorID != 0x4D534654 || lf.Panose.FamilyType != 2 || lf.Panose.SerifStyle != 11 {
			t.Errorf("wrong PANOSE data %+v", lf)
		}
	})

	t.Run("LogFontExDv", func(t *testing.T) {
		rec, err := decodeOne(t, build(EMRExtCreateFontIndirectW, func(r *emftest.Builder) {
			r.U32(3)
			fontExDv(r, axes16...)
		}))
		if err != nil {
			t.Fatal(err)
		}
		font := rec.(*ExtCreateFontIndirectW)
		if font.LogFontExDv == nil {
			t.Fatalf("wrong variant %+v", font)
		}
		if d := cmp.Diff(axes16, font.LogFontExDv.DesignVector.Values); d != "" {
			t.Error(d)
		}
		if font.LogFontExDv.Script != "Western" {
			t.Errorf("script %q", font.LogFontExDv.Script)
		}
	})

	t.Run("TooManyAxes", func(t *testing.T) {
		_, err := decodeOne(t, build(EMRExtCreateFontIndirectW, func(r *emftest.Builder) {
			r.U32(3)
			fontExDv(r, append(axes16, 16)...)
		}))
		if !errors.Is(err, parser.ErrUnexpectedPattern) {
			t.Errorf("got %v, want UnexpectedPattern", err)
		}
	})
}

func TestExtCreatePenDIB(t *testing.T) {
	rec, err := decodeOne(t, build(EMRExtCreatePen, sampleBodies()[EMRExtCreatePen]))
	if err != nil {
		t.Fatal(err)
	}
	pen := rec.(*ExtCreatePen)
	want := &gdi.LogPenEx{
		Style: gdi.PSGeometric | gdi.PSEndCapFlat,
		Width: 3,
		Brush: gdi.PatternBrush{Style: gdi.BSDIBPatternPT, Usage: gdi.DIBRGBColors},
	}
	if d := cmp.Diff(want, pen.Pen); d != "" {
		t.Error(d)
	}
	if pen.Bitmap == nil || pen.Bitmap.Width() != 1 || pen.Bitmap.Header.BitCount != 24 {
		t.Errorf("wrong pattern bitmap %+v", pen.Bitmap)
	}
}

func TestBitmapRecords(t *testing.T) {
	bodies := sampleBodies()

	rec, err := decodeOne(t, build(EMRMaskBlt, bodies[EMRMaskBlt]))
	if err != nil {
		t.Fatal(err)
	}
	mask := rec.(*MaskBlt)
	if mask.Source.Bitmap == nil || mask.Source.Bitmap.Header.BitCount != 24 {
		t.Errorf("wrong source bitmap %+v", mask.Source.Bitmap)
	}
	if mask.Mask.Bitmap == nil || mask.Mask.Bitmap.Header.BitCount != 1 {
		t.Errorf("wrong mask bitmap %+v", mask.Mask.Bitmap)
	}

	rec, err = decodeOne(t, build(EMRPlgBlt, bodies[EMRPlgBlt]))
	if err != nil {
		t.Fatal(err)
	}
	plg := rec.(*PlgBlt)
	if plg.Mask.Bitmap != nil || plg.Source.Bitmap == nil {
		t.Errorf("wrong bitmaps %+v %+v", plg.Source.Bitmap, plg.Mask.Bitmap)
	}
	wantDest := [3]gdi.PointL{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	if plg.Dest != wantDest {
		t.Errorf("destination %v", plg.Dest)
	}

	rec, err = decodeOne(t, build(EMRAlphaBlend, bodies[EMRAlphaBlend]))
	if err != nil {
		t.Fatal(err)
	}
	if a := rec.(*AlphaBlend); a.Blend.SourceConstantAlpha != 128 || a.SourceSize != (gdi.SizeL{CX: 1, CY: 1}) {
		t.Errorf("wrong alpha blend %+v", a)
	}

	rec, err = decodeOne(t, build(EMRStretchDIBits, bodies[EMRStretchDIBits]))
	if err != nil {
		t.Fatal(err)
	}
	if s := rec.(*StretchDIBits); s.DestSize != (gdi.SizeL{CX: 10, CY: 10}) || s.Bitmap == nil {
		t.Errorf("wrong StretchDIBits %+v", s)
	}
}

func TestDrawEscapeEPS(t *testing.T) {
	rec, err := decodeOne(t, build(EMRDrawEscape, sampleBodies()[EMRDrawEscape]))
	if err != nil {
		t.Fatal(err)
	}
	eps := rec.(*Escape).EPS
	if eps == nil {
		t.Fatal("EPS data missing")
	}
	if string(eps.PostScript) != "%!PS" || eps.Points[1] != (gdi.PointXY28_4{X: 160}) {
		t.Errorf("wrong EPS data %+v", eps)
	}
}

func TestResizePaletteLimit(t *testing.T) {
	for _, n := range []uint32{gdi.MaxPaletteEntries + 1, 1 << 26, 0xFFFFFFFF} {
		_, err := decodeOne(t, build(EMRResizePalette, func(r *emftest.Builder) {
			r.U32(1, n)
		}))
		if !errors.Is(err, parser.ErrUnexpectedPattern) {
			t.Errorf("%d entries: got %v, want UnexpectedPattern", n, err)
		}
	}
	_, err := decodeOne(t, build(EMRResizePalette, func(r *emftest.Builder) {
		r.U32(1, gdi.MaxPaletteEntries)
	}))
	if err != nil {
		t.Error(err)
	}
}

func TestHeaderExtension1(t *testing.T) {
	b := &emftest.Builder{}
	b.Record(uint32(EMRHeader), func(r *emftest.Builder) {
		r.I32(0, 0, 99, 49)
		r.I32(0, 0, 2000, 1000)
		r.U32(Signature, Version)
		r.U32(0, 0)
		r.U16(2, 0)
		r.U32(0, 0) // no description
		r.U32(0)
		r.I32(1920, 1080)
		r.I32(508, 286)
		r.U32(gdi.PixelFormatDescriptorSize, 100, 1) // extension 1
		r.U16(gdi.PixelFormatDescriptorSize, 1)
		r.U32(uint32(gdi.PFDSupportOpenGL))
		r.Zero(20)
		r.U32(0, 0, 0)
	})

	rec, err := decodeOne(t, b.Data())
	if err != nil {
		t.Fatal(err)
	}
	h := rec.(*Header)
	if !h.HasExtension1 || h.HasExtension2 {
		t.Errorf("extensions: %t %t", h.HasExtension1, h.HasExtension2)
	}
	if !h.OpenGL {
		t.Error("OpenGL flag not set")
	}
	if h.PixelFormat == nil || h.PixelFormat.Flags != gdi.PFDSupportOpenGL {
		t.Errorf("wrong pixel format %+v", h.PixelFormat)
	}
}
