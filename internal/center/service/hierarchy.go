package service

import (
	"context"
	"errors"

	"lscmis/internal/center/models"
	id "lscmis/pkg/domain"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/sentinel"
)

func (s *Service) ListDistricts(ctx context.Context) ([]models.District, error) {
	districts, err := s.hierarchy.ListDistricts(ctx)
	if err != nil {
		return nil, storeErr(err, "failed to list districts")
	}
	return districts, nil
}

func (s *Service) ListBlocks(ctx context.Context, districtID id.DistrictID) ([]models.Block, error) {
	if districtID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "district id required")
	}
	if _, err := s.hierarchy.FindDistrict(ctx, districtID); err != nil {
		return nil, notFoundOr(err, "district not found", "failed to load district")
	}
	blocks, err := s.hierarchy.ListBlocks(ctx, districtID)
	if err != nil {
		return nil, storeErr(err, "failed to list blocks")
	}
	return blocks, nil
}

// resolveHierarchy checks the district and block named by fields exist and agree.
// A block without a district takes the block's district.
func (s *Service) resolveHierarchy(ctx context.Context, fields models.Fields) (models.Fields, error) {
	if !fields.DistrictID.IsNil() {
		if _, err := s.hierarchy.FindDistrict(ctx, fields.DistrictID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return fields, dErrors.New(dErrors.CodeValidation, "unknown district")
			}
			return fields, storeErr(err, "failed to load district")
		}
	}
	if fields.BlockID.IsNil() {
		return fields, nil
	}
	block, err := s.hierarchy.FindBlock(ctx, fields.BlockID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return fields, dErrors.New(dErrors.CodeValidation, "unknown block")
		}
		return fields, storeErr(err, "failed to load block")
	}
	if fields.DistrictID.IsNil() {
		fields.DistrictID = block.DistrictID
	} else if block.DistrictID != fields.DistrictID {
		return fields, dErrors.New(dErrors.CodeValidation, "block does not belong to district")
	}
	return fields, nil
}
