package config

import (
	"os"

	"foodie-express-api/models"

	"github.com/sirupsen/logrus"
)

var (
	// DB bundles the typed collections; set once by Init.
	DB *models.Repositories

	// JWTSecret signs and verifies tokens.
	JWTSecret []byte
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init reads configuration from the environment and opens the data
// collections. Call after godotenv has loaded any .env file.
func Init() {
	JWTSecret = []byte(getEnv("JWT_SECRET", "foodie_express_super_secret_2024"))

	dir := getEnv("DATA_DIR", "data")
	seedDemo := getEnv("SEED_DEMO_DATA", "true") == "true"

	var err error
	DB, err = models.Open(dir, seedDemo)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open data collections")
	}
	logrus.WithFields(logrus.Fields{"dir": dir, "seed": seedDemo}).Info("Data collections ready")
}
