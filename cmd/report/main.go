package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/corgigo/corgigo-backend/config"
	"github.com/corgigo/corgigo-backend/internal/app/model"
	"github.com/corgigo/corgigo-backend/internal/app/repository"
	"github.com/corgigo/corgigo-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Exports the admin review queue to an XLSX file for offline triage.
//
//	go run cmd/report/main.go <output.xlsx> [status]
//
// status defaults to PENDING; pass "all" to export every profile.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/report/main.go <output.xlsx> [status]")
	}
	outputPath := os.Args[1]

	status := string(model.StatusPending)
	if len(os.Args) > 2 {
		status = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	profileRepo := repository.NewRestaurantProfileRepository(db.GetDB())

	var profiles []model.RestaurantProfile
	if status == "all" {
		profiles, err = profileRepo.FindAll()
	} else {
		profiles, err = profileRepo.FindPending()
	}
	if err != nil {
		log.Fatal("Failed to fetch profiles:", err)
	}

	fmt.Printf("Profiles to export: %d\n", len(profiles))

	if err := writeReport(outputPath, profiles); err != nil {
		log.Fatal("Failed to write report:", err)
	}

	fmt.Printf("Report written to %s\n", outputPath)
}

func writeReport(path string, profiles []model.RestaurantProfile) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Profiles"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Name", "Owner", "Owner Email", "Phone", "Address", "Status", "Documents", "Submitted At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range profiles {
		values := []interface{}{
			p.ID,
			p.Name,
			p.User.Name,
			p.User.Email,
			p.Phone,
			p.Address,
			string(p.Status),
			len(p.Documents),
			p.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
