package pixfmt

import "github.com/google/uuid"

// UVC identifies uncompressed formats by GUID. The first four bytes of the
// GUID, read little endian, are the FourCC.
var (
	GUIDYUY2 = uuid.MustParse("32595559-0000-0010-8000-00AA00389B71")
	GUIDNV12 = uuid.MustParse("3231564E-0000-0010-8000-00AA00389B71")
	GUIDY800 = uuid.MustParse("30303859-0000-0010-8000-00AA00389B71")
	GUIDGREY = uuid.MustParse("59455247-0000-0010-8000-00AA00389B71")
)

var guids = map[uuid.UUID]PixFmt{
	GUIDYUY2: PixFmtYUV422,
	GUIDNV12: PixFmtNV12,
	GUIDY800: PixFmtMono8,
	GUIDGREY: PixFmtMono8,
}

// FromGUID maps the GUID of a UVC uncompressed format descriptor to a format.
func FromGUID(g uuid.UUID) (PixFmt, bool) {
	f, ok := guids[g]
	return f, ok
}

// GUID returns the canonical UVC GUID for f, if it has one.
func (f PixFmt) GUID() (uuid.UUID, bool) {
	switch f {
	case PixFmtYUV422:
		return GUIDYUY2, true
	case PixFmtNV12:
		return GUIDNV12, true
	case PixFmtMono8:
		return GUIDY800, true
	}
	return uuid.Nil, false
}

// FourCC returns the four character code of the canonical UVC GUID for f.
func (f PixFmt) FourCC() ([4]byte, bool) {
	g, ok := f.GUID()
	if !ok {
		return [4]byte{}, false
	}
	return FourCCOf(g), true
}

// FourCCOf extracts the FourCC from a UVC format GUID.
func FourCCOf(g uuid.UUID) [4]byte {
	return [4]byte{g[3], g[2], g[1], g[0]}
}
