package models

import (
	"time"
)

// Cupom é a oferta de desconto emitida por um comércio. A chave é o
// código de 12 caracteres gerado na criação, não uma sequence.
type Cupom struct {
	NumCupom           string    `gorm:"column:num_cupom;primaryKey;type:char(12)" json:"num_cupom"`
	Titulo             string    `gorm:"column:tit_cupom;type:varchar(100);not null" json:"tit_cupom"`
	PercentualDesconto float64   `gorm:"column:per_desc_cupom;not null" json:"per_desc_cupom"`
	DataEmissao        time.Time `gorm:"column:dta_emissao_cupom;type:date;not null" json:"dta_emissao_cupom"`
	DataInicio         time.Time `gorm:"column:dta_inicio_cupom;type:date;not null" json:"dta_inicio_cupom"`
	DataTermino        time.Time `gorm:"column:dta_termino_cupom;type:date;not null" json:"dta_termino_cupom"`
	CnpjComercio       uint64    `gorm:"column:cnpj_comercio;not null;index" json:"cnpj_comercio"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	Comercio *Comercio       `gorm:"foreignKey:CnpjComercio;references:Cnpj" json:"comercio,omitempty"`
	Reserva  *CupomAssociado `gorm:"foreignKey:NumCupom;references:NumCupom" json:"reserva,omitempty"`
}

// TableName mantém o nome singular da tabela original
func (Cupom) TableName() string {
	return "cupom"
}
