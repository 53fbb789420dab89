package entity

import (
	"github.com/google/uuid"
)

// PropertyType is an admin-managed lookup referenced loosely by
// Property.Type.
type PropertyType struct {
	BaseSimple
	Key  string `db:"key"`
	Name string `db:"name"`
}

type CharacteristicType string

const (
	CharacteristicSelect      CharacteristicType = "select"
	CharacteristicNumberRange CharacteristicType = "number_range"
	CharacteristicBoolean     CharacteristicType = "boolean"
)

type PropertyCharacteristic struct {
	BaseSimple
	Key   string             `db:"key"`
	Label string             `db:"label"`
	Type  CharacteristicType `db:"type"`
}

// CharacteristicOption values are unique per characteristic.
type CharacteristicOption struct {
	BaseSimple
	CharacteristicID uuid.UUID `db:"characteristic_id"`
	Label            string    `db:"label"`
	Value            string    `db:"value"`
}
