package response

import (
	"real-estate-backend/internal/data/entity"
)

// Admin-facing lookup shapes with database ids, as opposed to the
// key-as-id filter shapes.
type PropertyTypeResponse struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

type CharacteristicOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type CharacteristicResponse struct {
	ID      string                         `json:"id"`
	Key     string                         `json:"key"`
	Label   string                         `json:"label"`
	Type    string                         `json:"type"`
	Options []CharacteristicOptionResponse `json:"options"`
}

func PropertyTypeToResponse(propertyType *entity.PropertyType) PropertyTypeResponse {
	return PropertyTypeResponse{
		ID:   propertyType.ID.String(),
		Key:  propertyType.Key,
		Name: propertyType.Name,
	}
}

func CharacteristicToResponse(characteristic *entity.PropertyCharacteristic, options []*entity.CharacteristicOption) CharacteristicResponse {
	optionResponses := make([]CharacteristicOptionResponse, 0, len(options))
	for _, option := range options {
		optionResponses = append(optionResponses, CharacteristicOptionResponse{
			ID:    option.ID.String(),
			Label: option.Label,
			Value: option.Value,
		})
	}

	return CharacteristicResponse{
		ID:      characteristic.ID.String(),
		Key:     characteristic.Key,
		Label:   characteristic.Label,
		Type:    string(characteristic.Type),
		Options: optionResponses,
	}
}
