package imaging

import (
	"encoding/binary"
	"image"
)

// orientation is the EXIF Orientation tag (0x0112): how the stored pixels
// must be transformed for display.
type orientation int

const (
	orientationNormal     orientation = 1
	orientationFlipH      orientation = 2
	orientationRotate180  orientation = 3
	orientationFlipV      orientation = 4
	orientationTranspose  orientation = 5
	orientationRotate90   orientation = 6
	orientationTransverse orientation = 7
	orientationRotate270  orientation = 8
)

const (
	jpegSOI        = 0xD8
	jpegEOI        = 0xD9
	jpegSOS        = 0xDA
	jpegAPP1       = 0xE1
	tagOrientation = 0x0112
	tiffTypeShort  = 3
)

func (o orientation) swapsAxes() bool {
	return o >= orientationTranspose && o <= orientationRotate270
}

// apply returns src transformed for display. Unknown values leave it as is.
func (o orientation) apply(src *image.RGBA) *image.RGBA {
	if o <= orientationNormal || o > orientationRotate270 {
		return src
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dw, dh := w, h
	if o.swapsAxes() {
		dw, dh = h, w
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for dy := 0; dy < dh; dy++ {
		for dx := 0; dx < dw; dx++ {
			var sx, sy int
			switch o {
			case orientationFlipH:
				sx, sy = w-1-dx, dy
			case orientationRotate180:
				sx, sy = w-1-dx, h-1-dy
			case orientationFlipV:
				sx, sy = dx, h-1-dy
			case orientationTranspose:
				sx, sy = dy, dx
			case orientationRotate90:
				sx, sy = dy, h-1-dx
			case orientationTransverse:
				sx, sy = w-1-dy, h-1-dx
			case orientationRotate270:
				sx, sy = w-1-dy, dx
			}
			dst.SetRGBA(dx, dy, src.RGBAAt(src.Rect.Min.X+sx, src.Rect.Min.Y+sy))
		}
	}
	return dst
}

// exifOrientation scans the JPEG segments before the image data for an Exif
// APP1 block and returns its orientation, or orientationNormal when there is
// none or it cannot be read.
func exifOrientation(data []byte) orientation {
	if len(data) < 4 || data[0] != 0xFF || data[1] != jpegSOI {
		return orientationNormal
	}

	for i := 2; i+4 <= len(data); {
		if data[i] != 0xFF {
			return orientationNormal
		}
		marker := data[i+1]
		if marker == 0xFF {
			i++
			continue
		}
		if marker == jpegSOS || marker == jpegEOI {
			return orientationNormal
		}

		size := int(binary.BigEndian.Uint16(data[i+2:]))
		if size < 2 || i+2+size > len(data) {
			return orientationNormal
		}
		if marker == jpegAPP1 {
			if o, ok := tiffOrientation(data[i+4 : i+2+size]); ok {
				return o
			}
		}
		i += 2 + size
	}
	return orientationNormal
}

// tiffOrientation reads the orientation entry of IFD0 from an APP1 payload.
func tiffOrientation(seg []byte) (orientation, bool) {
	const exifHeader = "Exif\x00\x00"
	if len(seg) < len(exifHeader)+8 || string(seg[:len(exifHeader)]) != exifHeader {
		return 0, false
	}
	tiff := seg[len(exifHeader):]

	var order binary.ByteOrder
	switch string(tiff[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return 0, false
	}
	if order.Uint16(tiff[2:]) != 42 {
		return 0, false
	}

	ifd := int64(order.Uint32(tiff[4:]))
	if ifd < 8 || ifd+2 > int64(len(tiff)) {
		return 0, false
	}
	start := int(ifd)
	count := int(order.Uint16(tiff[start:]))
	for k := 0; k < count; k++ {
		entry := start + 2 + 12*k
		if entry+12 > len(tiff) {
			return 0, false
		}
		if order.Uint16(tiff[entry:]) != tagOrientation {
			continue
		}
		if order.Uint16(tiff[entry+2:]) != tiffTypeShort {
			return 0, false
		}
		o := orientation(order.Uint16(tiff[entry+8:]))
		if o < orientationNormal || o > orientationRotate270 {
			return 0, false
		}
		return o, true
	}
	return 0, false
}
