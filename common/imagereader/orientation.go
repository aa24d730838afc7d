package imagereader

import (
	"image"

	"github.com/disintegration/imaging"
)

// Values of the EXIF Orientation tag.
const (
	OrientationNormal     = 1
	OrientationFlipH      = 2
	OrientationRotate180  = 3
	OrientationFlipV      = 4
	OrientationTranspose  = 5
	OrientationRotate270  = 6
	OrientationTransverse = 7
	OrientationRotate90   = 8
)

// ApplyOrientation turns an image stored with the given EXIF orientation
// upright. Unknown values leave the image untouched.
func ApplyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case OrientationFlipH:
		return imaging.FlipH(img)
	case OrientationRotate180:
		return imaging.Rotate180(img)
	case OrientationFlipV:
		return imaging.FlipV(img)
	case OrientationTranspose:
		return imaging.Transpose(img)
	case OrientationRotate270:
		return imaging.Rotate270(img)
	case OrientationTransverse:
		return imaging.Transverse(img)
	case OrientationRotate90:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// SwapsAxes tells if the orientation turns the image on its side.
func SwapsAxes(orientation int) bool {
	return orientation >= OrientationTranspose && orientation <= OrientationRotate90
}
