package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	LogFile      string `yaml:"LOG_FILE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Record store configuration
	StoreDriver string `yaml:"STORE_DRIVER"`
	StorePath   string `yaml:"STORE_PATH"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSS3Key     string `yaml:"AWS_S3_KEY"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Inventory behaviour
	Timezone         string `yaml:"TIMEZONE"`
	ExpiryWindowDays int    `yaml:"EXPIRY_WINDOW_DAYS"`
	NodeID           int64  `yaml:"NODE_ID"`
}

const (
	DefaultAppPort      = "3000"
	DefaultLogFile      = "./logs/app.log"
	DefaultRateLimitMax = 10
	DefaultStoreDriver  = "file"
	DefaultStorePath    = "ingredients.json"
	DefaultAWSS3Key     = "ingredients.json"
	DefaultTimezone     = "UTC"
	DefaultExpiryWindow = 3
)

var config Config

// LoadConfig reads config.yaml from the working directory.
func LoadConfig() {
	LoadConfigFrom("config.yaml")
}

// LoadConfigFrom reads the YAML file at path, then lets environment variables
// of the same name override it. A missing file leaves defaults in place.
func LoadConfigFrom(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		config = Config{}
	}

	applyEnv(&config)
	applyDefaults(&config)
}

func applyEnv(c *Config) {
	strs := map[string]*string{
		"APP_PORT":       &c.AppPort,
		"LOG_FILE":       &c.LogFile,
		"STORE_DRIVER":   &c.StoreDriver,
		"STORE_PATH":     &c.StorePath,
		"DB_USER":        &c.DBUser,
		"DB_NAME":        &c.DBName,
		"DB_PASSWORD":    &c.DBPassword,
		"DB_PORT":        &c.DBPort,
		"DB_HOST":        &c.DBHost,
		"AWS_S3_BUCKET":  &c.AWSS3Bucket,
		"AWS_S3_REGION":  &c.AWSS3Region,
		"AWS_S3_KEY":     &c.AWSS3Key,
		"AWS_ACCESS_KEY": &c.AWSAccessKey,
		"AWS_SECRET_KEY": &c.AWSSecretKey,
		"TIMEZONE":       &c.Timezone,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimitMax = n
		}
	}
	if v, ok := os.LookupEnv("EXPIRY_WINDOW_DAYS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.ExpiryWindowDays = n
		}
	}
	if v, ok := os.LookupEnv("NODE_ID"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.NodeID = n
		}
	}
}

func applyDefaults(c *Config) {
	if c.AppPort == "" {
		c.AppPort = DefaultAppPort
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.RateLimitMax <= 0 {
		c.RateLimitMax = DefaultRateLimitMax
	}
	if c.StoreDriver == "" {
		c.StoreDriver = DefaultStoreDriver
	}
	if c.StorePath == "" {
		c.StorePath = DefaultStorePath
	}
	if c.AWSS3Key == "" {
		c.AWSS3Key = DefaultAWSS3Key
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.ExpiryWindowDays <= 0 {
		c.ExpiryWindowDays = DefaultExpiryWindow
	}
}

// GetAppConfig returns a copy of the loaded configuration.
func GetAppConfig() Config {
	return config
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_FILE":
		return config.LogFile
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "STORE_DRIVER":
		return config.StoreDriver
	case "STORE_PATH":
		return config.StorePath
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_S3_KEY":
		return config.AWSS3Key
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "TIMEZONE":
		return config.Timezone
	case "EXPIRY_WINDOW_DAYS":
		return strconv.Itoa(config.ExpiryWindowDays)
	case "NODE_ID":
		return strconv.FormatInt(config.NodeID, 10)
	default:
		return ""
	}
}
