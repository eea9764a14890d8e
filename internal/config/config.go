package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/domain/pricing"
)

// DefaultTimeSlots is the fixed set of clock times offered on the time step.
// Slots are not computed from staff availability.
var DefaultTimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00", "18:00"}

const defaultPromoCoupons = "WELCOME10:percentage:10,CLEAN50:fixed:50"

type DynamoDB struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Tables struct {
	Bookings  string
	Addresses string
	Coupons   string
	Services  string
	Products  string
	Carts     string
	Payments  string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Payments struct {
	MercadoPagoAccessToken string
	Mock                   bool
}

// Config is everything the composition root needs. Values come from the
// environment (a .env file is auto-loaded by cmd/api).
type Config struct {
	Port      int
	DynamoDB  DynamoDB
	Tables    Tables
	Redis     Redis
	RabbitURL string
	JWTSecret string
	Pricing   pricing.Config
	DraftTTL  time.Duration
	TimeSlots []string
	// PromoCoupons are seeded into the coupon table at start-up so the table
	// stays the only place coupons are resolved from.
	PromoCoupons   []entities.Coupon
	Payments       Payments
	CatalogRetries uint64
}

func Load() Config {
	cfg := Config{
		Port: getenvInt("PORT", 8080),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: Tables{
			Bookings:  getenvDefault("BOOKINGS_TABLE", "bookings"),
			Addresses: getenvDefault("ADDRESSES_TABLE", "addresses"),
			Coupons:   getenvDefault("COUPONS_TABLE", "coupons"),
			Services:  getenvDefault("SERVICES_TABLE", "services"),
			Products:  getenvDefault("PRODUCTS_TABLE", "products"),
			Carts:     getenvDefault("CARTS_TABLE", "carts"),
			Payments:  getenvDefault("PAYMENTS_TABLE", "payments"),
		},
		Redis: Redis{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},
		RabbitURL: os.Getenv("RABBITMQ_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Pricing: pricing.Config{
			TaxRate:     getenvFloat("TAX_RATE", pricing.DefaultTaxRate),
			CapFraction: getenvFloat("DISCOUNT_CAP_FRACTION", pricing.DefaultCapFraction),
		},
		DraftTTL:  getenvDuration("DRAFT_TTL", 30*time.Minute),
		TimeSlots: getenvList("TIME_SLOTS", DefaultTimeSlots),
		Payments: Payments{
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:                   getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		},
		CatalogRetries: uint64(getenvInt("CATALOG_READ_RETRIES", 3)),
	}

	coupons, err := ParsePromoCoupons(getenvDefault("PROMO_COUPONS", defaultPromoCoupons))
	if err != nil {
		log.Printf("[config] ignoring PROMO_COUPONS err=%v", err)
	}
	cfg.PromoCoupons = coupons
	return cfg
}

// ParsePromoCoupons reads "CODE:type:value" entries separated by commas.
// Valid entries are returned even when others fail to parse.
func ParsePromoCoupons(raw string) ([]entities.Coupon, error) {
	var (
		out  []entities.Coupon
		errs []string
	)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			errs = append(errs, entry)
			continue
		}
		kind := entities.DiscountType(strings.ToLower(strings.TrimSpace(parts[1])))
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil || value <= 0 || (kind != entities.DiscountTypeFixed && kind != entities.DiscountTypePercentage) {
			errs = append(errs, entry)
			continue
		}
		out = append(out, entities.Coupon{
			Code:          entities.NormalizeCouponCode(parts[0]),
			DiscountType:  kind,
			DiscountValue: value,
			Active:        true,
		})
	}
	if len(errs) > 0 {
		return out, fmt.Errorf("invalid promo coupon entries: %s", strings.Join(errs, ", "))
	}
	return out, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
