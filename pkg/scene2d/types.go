package scene2d

// Scene2D is the complete 2D scene output consumed by external viewers and
// exporters. Coordinates are plan meters; no rendering happens here.
type Scene2D struct {
	Metadata  Metadata     `json:"metadata"`
	Zones     []Zone2D     `json:"zones"`
	Rooms     []Room2D     `json:"rooms"`
	Units     []Unit2D     `json:"units"`
	Corridors []Corridor2D `json:"corridors"`
}

// Metadata holds plan-level summary data.
type Metadata struct {
	Name        string     `json:"name,omitempty"`
	Bounds      [4]float64 `json:"bounds"` // [minX, minY, maxX, maxY]
	UnitCount   int        `json:"unit_count"`
	GeneratedAt string     `json:"generated_at"`
}

// Zone2D is a classified drawing region.
type Zone2D struct {
	Kind    string       `json:"kind"`
	Polygon [][2]float64 `json:"polygon"`
	Color   string       `json:"color"`
}

// Room2D is an extracted room.
type Room2D struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Polygon  [][2]float64 `json:"polygon"`
	Centroid [2]float64   `json:"centroid"`
	AreaM2   float64      `json:"area_m2"`
}

// Unit2D is a placed workspace unit.
type Unit2D struct {
	ID       int        `json:"id"`
	Type     string     `json:"type"`
	Rect     [4]float64 `json:"rect"` // [x1, y1, x2, y2]
	AreaM2   float64    `json:"area_m2"`
	Capacity int        `json:"capacity"`
	Color    string     `json:"color"`
}

// Corridor2D is a synthesized corridor: rectangular ones carry a bbox,
// routed ones a polyline.
type Corridor2D struct {
	ID    string       `json:"id"`
	Type  string       `json:"type"`
	BBox  *[4]float64  `json:"bbox,omitempty"`
	Path  [][2]float64 `json:"path,omitempty"`
	Width float64      `json:"width"`
}
