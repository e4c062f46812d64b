package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/config"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/database"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/models"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"
)

// Seeds a development database with a superuser, demo clients, orders and
// parts. Part creation goes through the service so the usual side effects
// (activities, order-status derivation) run too.
func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	usuarioService := services.NewUsuarioService(repository.NewUsuarioRepository(db))
	admin := &models.Usuario{
		Email:       "admin@usinasoft.com.br",
		FirstName:   "Admin",
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := usuarioService.CreateUsuario(admin, "admin123"); err != nil {
		log.Printf("Warning: failed to create superuser (may already exist): %v", err)
	}

	clienteService := services.NewClienteService(db)
	cliente := &models.Cliente{
		Nome:    "Metalúrgica Exemplo Ltda",
		Contato: "Carlos Silva",
		Email:   "contato@metalurgicaexemplo.com.br",
	}
	if err := clienteService.CreateCliente(cliente); err != nil {
		log.Fatal("Failed to create demo client:", err)
	}

	producaoService := services.NewProducaoService(db)
	fim := models.NewDate(time.Now().Year(), time.Now().Month(), time.Now().Day())
	fim.Time = fim.AddDate(0, 0, 14)
	ordem := &models.OrdemProducao{
		Codigo:          "NF-2026-0001",
		ClienteID:       cliente.ID,
		DataFimPrevista: &fim,
		Observacoes:     "Ordem de demonstração",
	}
	if err := producaoService.CreateOrdem(ordem, &admin.ID); err != nil {
		log.Fatal("Failed to create demo order:", err)
	}

	pecaService := services.NewPecaService(db)
	pecas := []models.Peca{
		{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-0001", Descricao: "Eixo usinado", Quantidade: 10},
		{OrdemProducaoID: ordem.ID, ClienteID: cliente.ID, Codigo: "PC-0002", Descricao: "Flange de aço", Quantidade: 4, DataEntrega: &fim},
	}
	for i := range pecas {
		if err := pecaService.CreatePeca(&pecas[i], &admin.ID); err != nil {
			log.Fatal("Failed to create demo part:", err)
		}
	}

	fmt.Println("Database initialized with demo data.")
	fmt.Println("Superuser: admin@usinasoft.com.br / admin123")
}
