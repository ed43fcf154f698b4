package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

type GeometryType string

const (
	GeometryPoint   GeometryType = "Point"
	GeometryPolygon GeometryType = "Polygon"
)

var ErrInvalidGeometry = errors.New("geometry tidak valid")

// Geometry adalah union tertutup Point/Polygon.
// Urutan koordinat selalu [lng, lat] mengikuti konvensi GeoJSON.
type Geometry struct {
	Type GeometryType
	// Point terisi saat Type == GeometryPoint.
	Point [2]float64
	// Ring terisi saat Type == GeometryPolygon; selalu tertutup
	// (titik pertama == titik terakhir).
	Ring [][2]float64
}

// NewPoint menerima input (lat, lng) dan menyimpannya sebagai [lng, lat].
func NewPoint(lat, lng float64) Geometry {
	return Geometry{
		Type:  GeometryPoint,
		Point: [2]float64{lng, lat},
	}
}

// NewPolygon menerima ring [lng, lat]. Minimal 4 titik. Ring yang belum
// tertutup ditutup dengan menyalin titik pertama ke akhir; ring yang sudah
// tertutup tidak diubah.
func NewPolygon(ring [][2]float64) (Geometry, error) {
	if len(ring) < 4 {
		return Geometry{}, fmt.Errorf("%w: polygon minimal memiliki 4 titik", ErrInvalidGeometry)
	}

	coords := make([][2]float64, len(ring), len(ring)+1)
	copy(coords, ring)

	first := coords[0]
	last := coords[len(coords)-1]
	if first[0] != last[0] || first[1] != last[1] {
		coords = append(coords, first)
	}

	return Geometry{Type: GeometryPolygon, Ring: coords}, nil
}

type geoJSON struct {
	Type        GeometryType    `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func (g Geometry) MarshalJSON() ([]byte, error) {
	switch g.Type {
	case GeometryPoint:
		return json.Marshal(struct {
			Type        GeometryType `json:"type"`
			Coordinates [2]float64   `json:"coordinates"`
		}{g.Type, g.Point})
	case GeometryPolygon:
		return json.Marshal(struct {
			Type        GeometryType   `json:"type"`
			Coordinates [][][2]float64 `json:"coordinates"`
		}{g.Type, [][][2]float64{g.Ring}})
	default:
		return nil, fmt.Errorf("%w: tipe %q tidak dikenal", ErrInvalidGeometry, g.Type)
	}
}

func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw geoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case GeometryPoint:
		var pt [2]float64
		if err := json.Unmarshal(raw.Coordinates, &pt); err != nil {
			return err
		}
		*g = Geometry{Type: GeometryPoint, Point: pt}
		return nil
	case GeometryPolygon:
		var rings [][][2]float64
		if err := json.Unmarshal(raw.Coordinates, &rings); err != nil {
			return err
		}
		if len(rings) == 0 {
			return fmt.Errorf("%w: polygon tanpa ring", ErrInvalidGeometry)
		}
		// hanya outer ring yang dipakai
		*g = Geometry{Type: GeometryPolygon, Ring: rings[0]}
		return nil
	default:
		return fmt.Errorf("%w: tipe %q tidak dikenal", ErrInvalidGeometry, raw.Type)
	}
}

// Value menyimpan geometry sebagai GeoJSON di kolom jsonb.
func (g Geometry) Value() (driver.Value, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *Geometry) Scan(value interface{}) error {
	if value == nil {
		*g = Geometry{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("tidak bisa scan geometry dari %T", value)
	}
}
