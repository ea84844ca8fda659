package maprender

type LatLng struct {
	Latitude  float64 `groups:"basic"`
	Longitude float64 `groups:"basic"`
}

type BoundingBox struct {
	MinLatitude  float64 `groups:"basic"`
	MinLongitude float64 `groups:"basic"`
	MaxLatitude  float64 `groups:"basic"`
	MaxLongitude float64 `groups:"basic"`
}

func NewBoundingBox(first LatLng) BoundingBox {
	return BoundingBox{
		MinLatitude:  first.Latitude,
		MinLongitude: first.Longitude,
		MaxLatitude:  first.Latitude,
		MaxLongitude: first.Longitude,
	}
}

func (box *BoundingBox) Extend(point LatLng) {
	if point.Latitude < box.MinLatitude {
		box.MinLatitude = point.Latitude
	}
	if point.Latitude > box.MaxLatitude {
		box.MaxLatitude = point.Latitude
	}
	if point.Longitude < box.MinLongitude {
		box.MinLongitude = point.Longitude
	}
	if point.Longitude > box.MaxLongitude {
		box.MaxLongitude = point.Longitude
	}
}

func (box *BoundingBox) Center() LatLng {
	return LatLng{
		Latitude:  (box.MinLatitude + box.MaxLatitude) / 2,
		Longitude: (box.MinLongitude + box.MaxLongitude) / 2,
	}
}

// Padded grows the box by a fraction of its span on each side so fitted
// geometry never touches the viewport edge. Zero-span boxes get a small
// fixed margin instead.
func (box *BoundingBox) Padded(fraction float64) BoundingBox {
	latitudeSpan := box.MaxLatitude - box.MinLatitude
	longitudeSpan := box.MaxLongitude - box.MinLongitude

	latitudePadding := latitudeSpan * fraction
	longitudePadding := longitudeSpan * fraction

	if latitudePadding == 0 {
		latitudePadding = 0.002
	}
	if longitudePadding == 0 {
		longitudePadding = 0.002
	}

	return BoundingBox{
		MinLatitude:  box.MinLatitude - latitudePadding,
		MinLongitude: box.MinLongitude - longitudePadding,
		MaxLatitude:  box.MaxLatitude + latitudePadding,
		MaxLongitude: box.MaxLongitude + longitudePadding,
	}
}

type Viewport struct {
	Center LatLng  `groups:"basic"`
	Zoom   float64 `groups:"basic"`

	Bounds *BoundingBox `groups:"basic"`
}
