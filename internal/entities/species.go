// Package entities contains core business entities.
package entities

// Species is canonical species data from the external lookup provider.
type Species struct {
	ID     int
	Name   string
	Sprite string
	Types  []string
}
