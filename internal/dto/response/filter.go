package response

import (
	"real-estate-backend/internal/data/entity"
)

// Filter metadata shapes consumed by the client-side filter UI. The
// lookup key doubles as the client-facing id.
type PropertyTypeFilter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CharacteristicOptionFilter struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CharacteristicFilter struct {
	ID      string                       `json:"id"`
	Label   string                       `json:"label"`
	Type    string                       `json:"type"`
	Options []CharacteristicOptionFilter `json:"options"`
}

func PropertyTypeToFilter(propertyType *entity.PropertyType) PropertyTypeFilter {
	return PropertyTypeFilter{
		ID:   propertyType.Key,
		Name: propertyType.Name,
	}
}

func CharacteristicToFilter(characteristic *entity.PropertyCharacteristic, options []*entity.CharacteristicOption) CharacteristicFilter {
	optionFilters := make([]CharacteristicOptionFilter, 0, len(options))
	for _, option := range options {
		optionFilters = append(optionFilters, CharacteristicOptionFilter{
			Label: option.Label,
			Value: option.Value,
		})
	}

	return CharacteristicFilter{
		ID:      characteristic.Key,
		Label:   characteristic.Label,
		Type:    string(characteristic.Type),
		Options: optionFilters,
	}
}
