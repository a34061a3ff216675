// pkg/pathmap/maps.go
package pathmap

import (
	"bean-defense/pkg/geom"
	"fmt"
)

// PlayableWidth — ширина игрового поля без боковой панели.
const PlayableWidth = 640.0

// water в правом верхнем углу травяной карты
var waterRegion = geom.Rect{X: 500, Y: -50, W: 340, H: 170}

var grassWaypoints = []geom.Point{
	{X: 352, Y: 0},
	{X: 352, Y: 96},
	{X: 160, Y: 96},
	{X: 160, Y: 160},
	{X: 96, Y: 160},
	{X: 96, Y: 352},
	{X: 224, Y: 352},
	{X: 224, Y: 288},
	{X: 416, Y: 288},
	{X: 416, Y: 224},
	{X: 544, Y: 224},
	{X: 544, Y: 480},
	{X: 288, Y: 480},
	{X: 288, Y: 544},
	{X: -69, Y: 544},
}

var desertWaypoints = []geom.Point{
	{X: 90, Y: 640},
	{X: 90, Y: 85},
	{X: 330, Y: 85},
	{X: 330, Y: 465},
	{X: 470, Y: 465},
	{X: 470, Y: 28},
	{X: 520, Y: 28},
	{X: 520, Y: 520},
	{X: 280, Y: 520},
	{X: 280, Y: 130},
	{X: 135, Y: 130},
	{X: 135, Y: 640},
}

var snowWaypoints = []geom.Point{
	{X: 640, Y: 545},
	{X: 485, Y: 545},
	{X: 485, Y: 425},
	{X: 285, Y: 425},
	{X: 285, Y: 545},
	{X: 100, Y: 545},
	{X: 100, Y: 160},
	{X: 220, Y: 160},
	{X: 220, Y: 0},
}

var library = map[MapID]*Map{
	MapGrass:    newMap(MapGrass, "Grass", grassWaypoints),
	MapDesert:   newMap(MapDesert, "Desert", desertWaypoints),
	MapSnow:     newMap(MapSnow, "Snow", snowWaypoints),
	MapTutorial: newMap(MapTutorial, "Tutorial", grassWaypoints),
}

func newMap(id MapID, name string, waypoints []geom.Point) *Map {
	return &Map{
		ID:            id,
		Name:          name,
		Path:          NewPath(waypoints),
		Restricted:    []geom.Rect{waterRegion},
		PlayableWidth: PlayableWidth,
	}
}

// Get returns a predefined map. Maps are shared and must be treated as read-only.
func Get(id MapID) (*Map, error) {
	m, ok := library[id]
	if !ok {
		return nil, fmt.Errorf("unknown map %q", id)
	}
	return m, nil
}

// MustGet is Get for the built-in IDs; it panics on an unknown one.
func MustGet(id MapID) *Map {
	m, err := Get(id)
	if err != nil {
		panic(err)
	}
	return m
}

// All returns the map IDs in menu order.
func All() []MapID {
	return []MapID{MapGrass, MapDesert, MapSnow, MapTutorial}
}
