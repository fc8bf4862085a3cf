// @title           Cupom Fácil API
// @version         1.0
// @description     API de emissão e reserva de cupons de desconto entre comerciantes e associados

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Informe o token com o prefixo `Bearer `
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	_ "github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/docs"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/app/routes"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/models"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/database"
	Logger "github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("falha ao inicializar o logger: %v\n", err)
		os.Exit(1)
	}

	// Segue mesmo sem .env, as variáveis podem vir do ambiente
	if err := godotenv.Load(); err != nil {
		Logger.Warning("arquivo .env não carregado: %v", err)
	} else {
		Logger.Info("arquivo .env carregado")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("falha ao criar o pool de conexões: %v", err)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		log.Println("aviso: modo drop ativo, todas as tabelas serão recriadas")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("falha ao recriar as tabelas: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("falha na migração automática: %v", err)
		}
	}

	if err := ensureCategoriasExist(db); err != nil {
		log.Fatalf("falha ao garantir as categorias padrão: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	printSystemInfo(pool)

	Logger.Info("servidor escutando em: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("falha ao iniciar o servidor: %v", err)
		os.Exit(1)
	}
}

// autoMigrate cria tabelas e colunas novas, sem remover nada
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Categoria{},
		&models.Associado{},
		&models.Comercio{},
		&models.Cupom{},
		&models.CupomAssociado{},
	)
	if err != nil {
		return err
	}

	Logger.Info("migração do banco concluída")
	return nil
}

// dropAndRecreateTables derruba e recria todas as tabelas
func dropAndRecreateTables(db *gorm.DB) error {
	// Ordem inversa das dependências de chave estrangeira
	err := db.Migrator().DropTable(
		&models.CupomAssociado{},
		&models.Cupom{},
		&models.Comercio{},
		&models.Associado{},
		&models.Categoria{},
	)
	if err != nil {
		return err
	}

	return autoMigrate(db)
}

// ensureCategoriasExist semeia as categorias padrão quando ausentes
func ensureCategoriasExist(db *gorm.DB) error {
	for _, nome := range models.CategoriasPadrao {
		var count int64
		if err := db.Model(&models.Categoria{}).Where("nom_categoria = ?", nome).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&models.Categoria{Nome: nome}).Error; err != nil {
				return err
			}
			Logger.Info("categoria criada: %s", nome)
		}
	}

	return nil
}

// printSystemInfo registra os dados do ambiente na inicialização
func printSystemInfo(pool *database.ConnectionPool) {
	Logger.Info("CPUs: %d, goroutines: %d", runtime.NumCPU(), runtime.NumGoroutine())
	Logger.Info("pool de conexões: max_idle=%d, max_open=%d", pool.MaxIdleConns, pool.MaxOpenConns)
}
