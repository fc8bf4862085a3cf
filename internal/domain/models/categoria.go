package models

// Categoria classifica os comércios. Dados de referência,
// semeados na inicialização do servidor.
type Categoria struct {
	ID   uint   `gorm:"column:id_categoria;primaryKey;autoIncrement" json:"id_categoria"`
	Nome string `gorm:"column:nom_categoria;type:varchar(50);uniqueIndex;not null" json:"nom_categoria"`
}

// TableName mantém o nome singular da tabela original
func (Categoria) TableName() string {
	return "categoria"
}

// CategoriasPadrao são as categorias oferecidas no formulário de cadastro
var CategoriasPadrao = []string{
	"Alimentação",
	"Vestuário",
	"Saúde e Beleza",
	"Serviços",
	"Educação",
	"Entretenimento",
	"Automotivo",
	"Outros",
}
