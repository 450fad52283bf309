// Package data expone el dataset estático de listings que carga el seed.
package data

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"wanderlust-seed/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

//go:embed listings.json
var embedded []byte

var ErrMissingData = errors.New(`dataset sin campo "data"`)

// archivo: { "data": [ {...}, {...} ] } en extended JSON
type datasetFile struct {
	Data *[]models.Listing `bson:"data"`
}

// Load lee el dataset. Sin path usa el embebido en el binario.
func Load(path string) ([]models.Listing, error) {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("leyendo dataset: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]models.Listing, error) {
	var f datasetFile
	if err := bson.UnmarshalExtJSON(raw, false, &f); err != nil {
		return nil, fmt.Errorf("parseando dataset: %w", err)
	}
	if f.Data == nil {
		return nil, ErrMissingData
	}
	return *f.Data, nil
}
