package models

import (
	"time"
)

// CupomAssociado é a reserva de um cupom por um associado.
// O índice único em num_cupom garante no máximo uma reserva por cupom.
type CupomAssociado struct {
	ID           uint       `gorm:"column:id_cupom_associado;primaryKey;autoIncrement" json:"id_cupom_associado"`
	NumCupom     string     `gorm:"column:num_cupom;type:char(12);uniqueIndex;not null" json:"num_cupom"`
	CpfAssociado uint64     `gorm:"column:cpf_associado;not null;index" json:"cpf_associado"`
	DataReserva  time.Time  `gorm:"column:dta_cupom_associado;type:date;not null" json:"dta_cupom_associado"`
	DataUso      *time.Time `gorm:"column:dta_uso_cupom_associado;type:date" json:"dta_uso_cupom_associado"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Cupom     *Cupom     `gorm:"foreignKey:NumCupom;references:NumCupom" json:"cupom,omitempty"`
	Associado *Associado `gorm:"foreignKey:CpfAssociado;references:Cpf" json:"associado,omitempty"`
}

// TableName mantém o nome singular da tabela original
func (CupomAssociado) TableName() string {
	return "cupom_associado"
}

// Utilizada informa se a reserva já foi resgatada no comércio
func (r *CupomAssociado) Utilizada() bool {
	return r.DataUso != nil
}
