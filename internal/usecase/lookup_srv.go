package usecase

import (
	"context"
	"fmt"
	"time"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/data/repository"
	"real-estate-backend/internal/dto/request"
	"real-estate-backend/internal/dto/response"
	"real-estate-backend/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LookupService is the admin CRUD surface over the filter vocabulary
// (property types, characteristics and their options).
type LookupService interface {
	CreatePropertyType(ctx context.Context, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error)
	ListPropertyTypes(ctx context.Context) ([]response.PropertyTypeResponse, error)
	UpdatePropertyType(ctx context.Context, id string, req *request.PropertyTypeUpdateRequest) (*response.PropertyTypeResponse, error)
	DeletePropertyType(ctx context.Context, id string) error

	CreateCharacteristic(ctx context.Context, req *request.CharacteristicRequest) (*response.CharacteristicResponse, error)
	ListCharacteristics(ctx context.Context) ([]response.CharacteristicResponse, error)
	UpdateCharacteristic(ctx context.Context, id string, req *request.CharacteristicUpdateRequest) (*response.CharacteristicResponse, error)
	DeleteCharacteristic(ctx context.Context, id string) error

	AddCharacteristicOption(ctx context.Context, characteristicID string, req *request.CharacteristicOptionRequest) (*response.CharacteristicResponse, error)
	UpdateCharacteristicOption(ctx context.Context, optionID string, req *request.CharacteristicOptionUpdateRequest) error
	DeleteCharacteristicOption(ctx context.Context, optionID string) error
}

type lookupService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLookupService(
	repo *repository.Repository,
	log *zap.Logger,
) LookupService {
	return &lookupService{
		repo: repo,
		log:  log.With(zap.String("service", "lookup")),
	}
}

func (s *lookupService) CreatePropertyType(ctx context.Context, req *request.PropertyTypeRequest) (*response.PropertyTypeResponse, error) {
	propertyType := &entity.PropertyType{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Key:  req.Key,
		Name: req.Name,
	}

	if err := s.repo.PropertyType.Create(ctx, propertyType); err != nil {
		return nil, err
	}

	s.log.Info("Property type created", zap.String("key", propertyType.Key))

	resp := response.PropertyTypeToResponse(propertyType)
	return &resp, nil
}

func (s *lookupService) ListPropertyTypes(ctx context.Context) ([]response.PropertyTypeResponse, error) {
	types, err := s.repo.PropertyType.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.PropertyTypeResponse, 0, len(types))
	for _, propertyType := range types {
		responses = append(responses, response.PropertyTypeToResponse(propertyType))
	}

	return responses, nil
}

func (s *lookupService) UpdatePropertyType(ctx context.Context, id string, req *request.PropertyTypeUpdateRequest) (*response.PropertyTypeResponse, error) {
	typeID, err := parseLookupID(id)
	if err != nil {
		return nil, err
	}

	propertyType, err := s.repo.PropertyType.FindByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if propertyType == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "property type not found")
	}

	if req.Key != nil {
		propertyType.Key = *req.Key
	}
	if req.Name != nil {
		propertyType.Name = *req.Name
	}

	if err := s.repo.PropertyType.Update(ctx, propertyType); err != nil {
		return nil, err
	}

	resp := response.PropertyTypeToResponse(propertyType)
	return &resp, nil
}

func (s *lookupService) DeletePropertyType(ctx context.Context, id string) error {
	typeID, err := parseLookupID(id)
	if err != nil {
		return err
	}

	if err := s.repo.PropertyType.Delete(ctx, typeID); err != nil {
		return err
	}

	s.log.Info("Property type deleted", zap.String("id", id))
	return nil
}

func (s *lookupService) CreateCharacteristic(ctx context.Context, req *request.CharacteristicRequest) (*response.CharacteristicResponse, error) {
	now := time.Now()
	characteristic := &entity.PropertyCharacteristic{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Key:   req.Key,
		Label: req.Label,
		Type:  entity.CharacteristicType(req.Type),
	}

	options := make([]*entity.CharacteristicOption, 0, len(req.Options))
	for _, opt := range req.Options {
		options = append(options, &entity.CharacteristicOption{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			CharacteristicID: characteristic.ID,
			Label:            opt.Label,
			Value:            opt.Value,
		})
	}

	if err := s.repo.Characteristic.Create(ctx, characteristic, options); err != nil {
		return nil, err
	}

	s.log.Info("Characteristic created",
		zap.String("key", characteristic.Key),
		zap.Int("options", len(options)),
	)

	resp := response.CharacteristicToResponse(characteristic, options)
	return &resp, nil
}

func (s *lookupService) ListCharacteristics(ctx context.Context) ([]response.CharacteristicResponse, error) {
	characteristics, err := s.repo.Characteristic.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.CharacteristicResponse, 0, len(characteristics))
	for _, characteristic := range characteristics {
		options, err := s.repo.Characteristic.FindOptions(ctx, characteristic.ID)
		if err != nil {
			return nil, fmt.Errorf("list options for %s: %w", characteristic.Key, err)
		}
		responses = append(responses, response.CharacteristicToResponse(characteristic, options))
	}

	return responses, nil
}

func (s *lookupService) UpdateCharacteristic(ctx context.Context, id string, req *request.CharacteristicUpdateRequest) (*response.CharacteristicResponse, error) {
	characteristicID, err := parseLookupID(id)
	if err != nil {
		return nil, err
	}

	characteristic, err := s.repo.Characteristic.FindByID(ctx, characteristicID)
	if err != nil {
		return nil, err
	}
	if characteristic == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "characteristic not found")
	}

	if req.Key != nil {
		characteristic.Key = *req.Key
	}
	if req.Label != nil {
		characteristic.Label = *req.Label
	}
	if req.Type != nil {
		characteristic.Type = entity.CharacteristicType(*req.Type)
	}

	if err := s.repo.Characteristic.Update(ctx, characteristic); err != nil {
		return nil, err
	}

	options, err := s.repo.Characteristic.FindOptions(ctx, characteristic.ID)
	if err != nil {
		return nil, fmt.Errorf("list options for %s: %w", characteristic.Key, err)
	}

	resp := response.CharacteristicToResponse(characteristic, options)
	return &resp, nil
}

func (s *lookupService) DeleteCharacteristic(ctx context.Context, id string) error {
	characteristicID, err := parseLookupID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Characteristic.Delete(ctx, characteristicID); err != nil {
		return err
	}

	s.log.Info("Characteristic deleted", zap.String("id", id))
	return nil
}

func (s *lookupService) AddCharacteristicOption(ctx context.Context, characteristicID string, req *request.CharacteristicOptionRequest) (*response.CharacteristicResponse, error) {
	id, err := parseLookupID(characteristicID)
	if err != nil {
		return nil, err
	}

	characteristic, err := s.repo.Characteristic.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if characteristic == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "characteristic not found")
	}

	option := &entity.CharacteristicOption{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CharacteristicID: characteristic.ID,
		Label:            req.Label,
		Value:            req.Value,
	}

	if err := s.repo.Characteristic.AddOption(ctx, option); err != nil {
		return nil, err
	}

	options, err := s.repo.Characteristic.FindOptions(ctx, characteristic.ID)
	if err != nil {
		return nil, fmt.Errorf("list options for %s: %w", characteristic.Key, err)
	}

	resp := response.CharacteristicToResponse(characteristic, options)
	return &resp, nil
}

func (s *lookupService) UpdateCharacteristicOption(ctx context.Context, optionID string, req *request.CharacteristicOptionUpdateRequest) error {
	id, err := parseLookupID(optionID)
	if err != nil {
		return err
	}

	option := &entity.CharacteristicOption{
		BaseSimple: entity.BaseSimple{ID: id},
		Label:      req.Label,
		Value:      req.Value,
	}

	return s.repo.Characteristic.UpdateOption(ctx, option)
}

func (s *lookupService) DeleteCharacteristicOption(ctx context.Context, optionID string) error {
	id, err := parseLookupID(optionID)
	if err != nil {
		return err
	}

	return s.repo.Characteristic.DeleteOption(ctx, id)
}

func parseLookupID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.ErrValidation, "invalid id")
	}
	return id, nil
}
