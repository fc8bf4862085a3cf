package models

import (
	"time"

	"gorm.io/gorm"
)

// Comercio representa o comerciante que emite cupons
type Comercio struct {
	Cnpj         uint64    `gorm:"column:cnpj_comercio;primaryKey" json:"cnpj_comercio"`
	NomeFantasia string    `gorm:"column:nom_fantasia_comercio;type:varchar(100);not null" json:"nom_fantasia_comercio"`
	RazaoSocial  string    `gorm:"column:raz_social_comercio;type:varchar(100);not null" json:"raz_social_comercio"`
	Contato      string    `gorm:"column:con_comercio;type:varchar(20);not null" json:"con_comercio"`
	Email        string    `gorm:"column:email_comercio;type:varchar(100);uniqueIndex;not null" json:"email_comercio"`
	Endereco     string    `gorm:"column:end_comercio;type:varchar(150);not null" json:"end_comercio"`
	Bairro       string    `gorm:"column:bai_comercio;type:varchar(80);not null" json:"bai_comercio"`
	Cep          string    `gorm:"column:cep_comercio;type:varchar(9);not null" json:"cep_comercio"`
	Uf           string    `gorm:"column:uf_comercio;type:char(2);not null" json:"uf_comercio"`
	Cidade       string    `gorm:"column:cid_comercio;type:varchar(80);not null" json:"cid_comercio"`
	IDCategoria  uint      `gorm:"column:id_categoria;not null" json:"id_categoria"`
	Senha        string    `gorm:"column:sen_comercio;type:varchar(100);not null" json:"-"` // sempre armazenada com bcrypt
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Categoria *Categoria `gorm:"foreignKey:IDCategoria;references:ID" json:"categoria,omitempty"`
	Cupons    []Cupom    `gorm:"foreignKey:CnpjComercio;references:Cnpj" json:"cupons,omitempty"`
}

// TableName mantém o nome singular da tabela original
func (Comercio) TableName() string {
	return "comercio"
}

// BeforeSave é um hook do GORM executado tanto no Create quanto no Update.
// O limite de 60 caracteres distingue senha em texto puro de um hash bcrypt
// já aplicado, evitando re-hashear o hash.
func (c *Comercio) BeforeSave(tx *gorm.DB) error {
	if c.Senha != "" && len(c.Senha) < 60 {
		hashedPassword, err := HashPassword(c.Senha)
		if err != nil {
			return err
		}
		c.Senha = hashedPassword
	}
	return nil
}
