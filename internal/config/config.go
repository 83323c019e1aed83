package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AuthModePassThrough = "passthrough"
	AuthModeJWT         = "jwt"
)

// DefaultAllowedOrigins sont les front-ends locaux autorisés en développement.
var DefaultAllowedOrigins = []string{
	"http://localhost:5500",
	"http://localhost:3000",
	"http://localhost:3005",
	"http://127.0.0.1:3005",
	"http://127.0.0.1:5500",
	"http://127.0.0.1:3000",
}

type Config struct {
	Port            string
	AllowedOrigins  []string
	DatabaseURL     string
	AuthMode        string
	JWTSecret       string
	Env             string
	ShutdownTimeout time.Duration
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load lit le fichier .env s'il existe puis l'environnement du système.
func Load() Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3005")
	v.SetDefault("ALLOWED_ORIGINS", strings.Join(DefaultAllowedOrigins, ","))
	v.SetDefault("DATABASE_URL", "postgres://root@localhost:5432/restful?sslmode=disable")
	v.SetDefault("AUTH_MODE", AuthModePassThrough)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	return v
}

// FromViper construit la configuration à partir d'une instance viper déjà alimentée.
func FromViper(v *viper.Viper) Config {
	return Config{
		Port:            v.GetString("PORT"),
		AllowedOrigins:  splitList(v.GetString("ALLOWED_ORIGINS")),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		AuthMode:        strings.ToLower(strings.TrimSpace(v.GetString("AUTH_MODE"))),
		JWTSecret:       v.GetString("JWT_SECRET"),
		Env:             v.GetString("APP_ENV"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

// Default renvoie la configuration sans .env ni variables d'environnement.
func Default() Config {
	return Config{
		Port:            "3005",
		AllowedOrigins:  append([]string(nil), DefaultAllowedOrigins...),
		DatabaseURL:     "postgres://root@localhost:5432/restful?sslmode=disable",
		AuthMode:        AuthModePassThrough,
		Env:             "development",
		ShutdownTimeout: 10 * time.Second,
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
