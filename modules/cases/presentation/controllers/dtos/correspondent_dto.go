package dtos

import (
	"github.com/assistravel/casetrack/modules/cases/domain/entities/correspondent"
)

type CorrespondentDTO struct {
	Name    string  `json:"name" validate:"required"`
	Country string  `json:"country"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

func (d *CorrespondentDTO) Validate() error {
	return validate.Struct(d)
}

func (d *CorrespondentDTO) ToEntity() *correspondent.Correspondent {
	entity := correspondent.New(d.Name, d.Country)
	entity.SetContact(d.Phone, d.Email)
	return entity
}

func (d *CorrespondentDTO) Apply(entity *correspondent.Correspondent) {
	entity.SetName(d.Name)
	entity.SetCountry(d.Country)
	entity.SetContact(d.Phone, d.Email)
}
