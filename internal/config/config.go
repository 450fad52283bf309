package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Valores fijos del seed. El .env / entorno solo los pisa en local.
const (
	DefaultMongoURI = "mongodb://localhost:27017/wanderlust"
	DefaultOwnerID  = "65f1a2b3c4d5e6f708192a3b"
)

type Config struct {
	MongoURI  string
	OwnerID   string
	DataFile  string
	RedisAddr string
	RedisPass string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:  getEnv("MONGO_URI", DefaultMongoURI),
		OwnerID:   getEnv("SEED_OWNER_ID", DefaultOwnerID),
		DataFile:  os.Getenv("SEED_DATA_FILE"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
	}
}

// CacheEnabled indica si hay un Redis configurado para invalidar tras el seed.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}
