package models

import (
	"time"

	"gorm.io/gorm"
)

// Associado representa o morador que reserva cupons.
// As colunas preservam a nomenclatura original do banco.
type Associado struct {
	Cpf            uint64    `gorm:"column:cpf_associado;primaryKey" json:"cpf_associado"`
	Nome           string    `gorm:"column:nom_associado;type:varchar(100);not null" json:"nom_associado"`
	DataNascimento time.Time `gorm:"column:dta_associado;type:date;not null" json:"dta_associado"`
	Celular        string    `gorm:"column:cel_associado;type:varchar(20);not null" json:"cel_associado"`
	Email          string    `gorm:"column:email_associado;type:varchar(100);uniqueIndex;not null" json:"email_associado"`
	Endereco       string    `gorm:"column:end_associado;type:varchar(150);not null" json:"end_associado"`
	Bairro         string    `gorm:"column:bai_associado;type:varchar(80);not null" json:"bai_associado"`
	Cep            string    `gorm:"column:cep_associado;type:varchar(9);not null" json:"cep_associado"`
	Uf             string    `gorm:"column:uf_associado;type:char(2);not null" json:"uf_associado"`
	Cidade         string    `gorm:"column:cid_associado;type:varchar(80);not null" json:"cid_associado"`
	Senha          string    `gorm:"column:sen_associado;type:varchar(100);not null" json:"-"` // sempre armazenada com bcrypt
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Reservas []CupomAssociado `gorm:"foreignKey:CpfAssociado;references:Cpf" json:"reservas,omitempty"`
}

// TableName mantém o nome singular da tabela original
func (Associado) TableName() string {
	return "associado"
}

// BeforeSave é um hook do GORM executado tanto no Create quanto no Update.
// O limite de 60 caracteres distingue senha em texto puro de um hash bcrypt
// já aplicado, evitando re-hashear o hash.
func (a *Associado) BeforeSave(tx *gorm.DB) error {
	if a.Senha != "" && len(a.Senha) < 60 {
		hashedPassword, err := HashPassword(a.Senha)
		if err != nil {
			return err
		}
		a.Senha = hashedPassword
	}
	return nil
}
