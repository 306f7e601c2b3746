package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/podoclinic/booking/internal/models"
)

type StarterCategory struct {
	Name        string
	Description string
}

type StarterService struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
}

var StarterCategories = []StarterCategory{
	{"Podstawowe zabiegi", "Konsultacje i podstawowa pielęgnacja"},
	{"Zabiegi specjalistyczne", "Zaawansowane zabiegi korekcyjne"},
	{"Korekcja i ortopedia", "Wsparcie strukturalne stóp"},
	{"Usługi dodatkowe", "Uzupełniające terapie i wizyty"},
}

var StarterServices = []StarterService{
	{"Konsultacja podologiczna", "Profesjonalna ocena stanu zdrowia stóp i doradztwo", 100, 45, "Podstawowe zabiegi"},
	{"Podstawowy zabieg podologiczny", "Kompleksowa pielęgnacja stóp z profesjonalnym podejściem", 170, 75, "Podstawowe zabiegi"},
	{"Obcięcie paznokci - zdrowe", "Prawidłowe obcięcie zdrowych paznokci u stóp", 100, 30, "Podstawowe zabiegi"},
	{"Obcięcie paznokci - zmienione chorobowo", "Obcięcie paznokci zmienionych chorobowo", 150, 45, "Podstawowe zabiegi"},
	{"Pękające pięty", "Leczenie i pielęgnacja pękających pięt", 150, 50, "Podstawowe zabiegi"},

	{"Usunięcie odcisku", "Bezbolesne usuwanie odcisków z zastosowaniem profesjonalnych narzędzi", 100, 30, "Zabiegi specjalistyczne"},
	{"Opracowanie modzeli", "Precyzyjne opracowanie modzeli", 130, 40, "Zabiegi specjalistyczne"},
	{"Leczenie brodawek", "Skuteczne leczenie brodawek wirusowych metodami podologicznymi", 120, 40, "Zabiegi specjalistyczne"},
	{"Rekonstrukcja paznokci", "Odbudowa uszkodzonych lub brakujących paznokci", 150, 60, "Zabiegi specjalistyczne"},
	{"Badanie mykologiczne", "Diagnostyka grzybicy paznokci i stóp", 150, 30, "Zabiegi specjalistyczne"},

	{"Podcięcie elementu wrastającego + opatrunek", "Leczenie wrastających paznokci z opatrunkiem", 150, 45, "Korekcja i ortopedia"},
	{"Założenie klamry korygującej", "Bezbolesne leczenie wrastających paznokci metodą klamrową", 200, 60, "Korekcja i ortopedia"},
	{"Przełożenie klamry", "Przełożenie klamry korygującej", 150, 45, "Korekcja i ortopedia"},
	{"Tamponada", "Metoda leczenia wrastających paznokci z użyciem tamponady", 0, 30, "Korekcja i ortopedia"},
	{"Orteza", "Korekcja kształtu paznokci za pomocą specjalnych ortez", 0, 60, "Korekcja i ortopedia"},
	{"Separator palców", "Korekcja ustawienia palców stóp", 0, 30, "Korekcja i ortopedia"},
	{"Klin silikonowy", "Zastosowanie klinów silikonowych do korekcji", 0, 30, "Korekcja i ortopedia"},

	{"Taping (kinesiotaping)", "Terapeutyczne oklejanie stóp taśmami kinesio", 40, 30, "Usługi dodatkowe"},
	{"Wizyty domowe", "Profesjonalna opieka podologiczna w zaciszu własnego domu (cena dojazdu indywidualna)", 0, 60, "Usługi dodatkowe"},
	{"Leczenie onycholizy", "Leczenie odwarstwienia płytki paznokciowej", 120, 45, "Usługi dodatkowe"},
}

type StarterSetting struct {
	Key         string
	Value       string
	Description string
}

var StarterSettings = []StarterSetting{
	{models.SettingNotificationEmail, "", "Adres email, na który będą przychodzić powiadomienia o nowych rezerwacjach"},
	{models.SettingClinicName, "Gabinet Podologiczny", "Nazwa gabinetu wyświetlana w emailach"},
	{models.SettingMailFrom, "", "Adres nadawcy powiadomień (domyślnie adres domeny Mailgun)"},
}

// SeedCatalog inserts the starter categories and services when both tables
// are empty. It reports whether anything was written.
func SeedCatalog(db *gorm.DB) (bool, error) {
	var categories, services int64
	if err := db.Model(&models.ServiceCategory{}).Count(&categories).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Service{}).Count(&services).Error; err != nil {
		return false, err
	}
	if categories > 0 || services > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]uint, len(StarterCategories))
		for _, sc := range StarterCategories {
			desc := sc.Description
			c := models.ServiceCategory{Name: sc.Name, Description: &desc}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			ids[sc.Name] = c.ID
		}

		for _, ss := range StarterServices {
			id, ok := ids[ss.Category]
			if !ok {
				return fmt.Errorf("starter service %q: unknown category %q", ss.Name, ss.Category)
			}
			desc := ss.Description
			s := models.Service{
				Name:            ss.Name,
				Description:     &desc,
				Price:           ss.Price,
				DurationMinutes: ss.DurationMinutes,
				IsActive:        true,
				CategoryID:      id,
			}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return err == nil, err
}

// SeedSettings adds the default settings when the table is empty.
func SeedSettings(db *gorm.DB) (bool, error) {
	var n int64
	if err := db.Model(&models.Setting{}).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	rows := make([]models.Setting, 0, len(StarterSettings))
	for _, s := range StarterSettings {
		value, desc := s.Value, s.Description
		rows = append(rows, models.Setting{Key: s.Key, Value: &value, Description: &desc})
	}
	if err := db.Create(&rows).Error; err != nil {
		return false, err
	}
	return true, nil
}
