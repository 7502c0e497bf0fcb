package models

import (
	"log"

	"github.com/Andersonriberpro/ribersolucoespack/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&Client{}, &StageHistory{}, &Interaction{},
		&Provider{}, &Product{},
		&Budget{}, &Order{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
