package models

import id "lscmis/pkg/domain"

type District struct {
	ID   id.DistrictID
	Name string
}

type Block struct {
	ID         id.BlockID
	DistrictID id.DistrictID
	Name       string
}
