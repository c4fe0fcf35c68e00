package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration. DATABASE_URL wins when set; otherwise the
	// discrete fields are composed into a DSN.
	DatabaseURL string `yaml:"DATABASE_URL"`
	DBUser      string `yaml:"DB_USER"`
	DBName      string `yaml:"DB_NAME"`
	DBPassword  string `yaml:"DB_PASSWORD"`
	DBPort      string `yaml:"DB_PORT"`
	DBHost      string `yaml:"DB_HOST"`

	// Server
	Port   string `yaml:"PORT"`
	IsProd bool   `yaml:"IsProd"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Ingredient recognition service
	RecognitionAPIURL string `yaml:"RECOGNITION_API_URL"`
	RecognitionAPIKey string `yaml:"RECOGNITION_API_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from config.yaml, falling back to the process
// environment so deployments without a config file still work.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "DATABASE_URL":
		value = config.DatabaseURL
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "PORT":
		value = config.Port
	case "IsProd":
		if config.IsProd {
			value = "true"
		}
	case "AWS_S3_BUCKET":
		value = config.AWSS3Bucket
	case "AWS_S3_REGION":
		value = config.AWSS3Region
	case "AWS_ACCESS_KEY":
		value = config.AWSAccessKey
	case "AWS_SECRET_KEY":
		value = config.AWSSecretKey
	case "RECOGNITION_API_URL":
		value = config.RecognitionAPIURL
	case "RECOGNITION_API_KEY":
		value = config.RecognitionAPIKey
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
