package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	DatabaseURL string
	CORSOrigins string

	// SeasonPivotMonth is the month a new sporting season starts (default August).
	SeasonPivotMonth time.Month = time.August
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Pas de fichier .env, utilisation des variables d'environnement système")
	} else {
		log.Println("✅ Fichier .env chargé")
	}

	DatabaseURL = GetEnv("DATABASE_URL")
	if DatabaseURL == "" {
		log.Fatal("❌ DATABASE_URL is not set")
	}

	CORSOrigins = GetEnv("CORS_ORIGINS", "*")

	if v := GetEnv("SEASON_PIVOT_MONTH"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			log.Fatalf("❌ SEASON_PIVOT_MONTH invalide: %q", v)
		}
		SeasonPivotMonth = time.Month(m)
	}
	log.Printf("✅ Config chargée (pivot saison = %s)", SeasonPivotMonth)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
