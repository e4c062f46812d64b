package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/database"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory database and migrates the full
// schema. Each test gets its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupRouter creates a gin test router without auth middleware.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

func SeedCliente(t *testing.T, db *gorm.DB, nome string) *models.Cliente {
	t.Helper()
	cliente := &models.Cliente{Nome: nome}
	if err := db.Create(cliente).Error; err != nil {
		t.Fatalf("Failed to seed cliente: %v", err)
	}
	return cliente
}

func SeedOrdem(t *testing.T, db *gorm.DB, clienteID, codigo string) *models.OrdemProducao {
	t.Helper()
	ordem := &models.OrdemProducao{
		Codigo:    codigo,
		ClienteID: clienteID,
		Status:    string(models.OPAberta),
	}
	if err := db.Create(ordem).Error; err != nil {
		t.Fatalf("Failed to seed ordem: %v", err)
	}
	return ordem
}

func SeedPeca(t *testing.T, db *gorm.DB, ordemID, clienteID, codigo, status string) *models.Peca {
	t.Helper()
	peca := &models.Peca{
		OrdemProducaoID: ordemID,
		ClienteID:       clienteID,
		Codigo:          codigo,
		Quantidade:      1,
		Status:          status,
	}
	if err := db.Create(peca).Error; err != nil {
		t.Fatalf("Failed to seed peca: %v", err)
	}
	return peca
}
