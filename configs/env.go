package configs

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func init() {
	// A missing .env is fine in deployed environments where the
	// variables come from the process environment itself.
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading configuration from environment")
	}
}

func EnvMongoURI() string {
	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI is not set")
	}
	return uri
}

func EnvDBName() string {
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "curewrap"
	}
	return name
}

func EnvJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvRazorpayKeyId() string {
	return os.Getenv("RAZORPAY_KEY_ID")
}

func EnvRazorpayKeySecret() string {
	return os.Getenv("RAZORPAY_KEY_SECRET")
}

func EnvPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}
