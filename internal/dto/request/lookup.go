package request

type PropertyTypeRequest struct {
	Key  string `json:"key" validate:"required,min=2"`
	Name string `json:"name" validate:"required,min=2"`
}

type PropertyTypeUpdateRequest struct {
	Key  *string `json:"key,omitempty" validate:"omitempty,min=2"`
	Name *string `json:"name,omitempty" validate:"omitempty,min=2"`
}

type CharacteristicOptionRequest struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type CharacteristicRequest struct {
	Key     string                        `json:"key" validate:"required,min=2"`
	Label   string                        `json:"label" validate:"required,min=2"`
	Type    string                        `json:"type" validate:"required,oneof=select number_range boolean"`
	Options []CharacteristicOptionRequest `json:"options,omitempty" validate:"omitempty,dive"`
}

type CharacteristicUpdateRequest struct {
	Key   *string `json:"key,omitempty" validate:"omitempty,min=2"`
	Label *string `json:"label,omitempty" validate:"omitempty,min=2"`
	Type  *string `json:"type,omitempty" validate:"omitempty,oneof=select number_range boolean"`
}

// Option updates replace the whole row; both fields are required.
type CharacteristicOptionUpdateRequest struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}
