package cmd

import "strings"

// Defaults applied when the environment leaves a setting empty.
const (
	DefaultHTTPPort           = "8080"
	DefaultDataFile           = "./data/dataBahanAjar.json"
	DefaultLogLevel           = "info"
	DefaultStockAlertSchedule = "0 */5 * * * *"
	DefaultKafkaTopic         = "sitta.changes"
	DefaultServiceName        = "sitta"
)

type Config struct {
	HTTPPort           string
	DataFile           string
	LogLevel           string
	StockAlertSchedule string
	KafkaBrokers       []string
	KafkaTopic         string
	ServiceName        string
}

// LoadConfig reads the settings through getenv, usually os.Getenv.
func LoadConfig(getenv func(string) string) Config {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		HTTPPort:           value("HTTP_PORT", DefaultHTTPPort),
		DataFile:           value("DATA_FILE", DefaultDataFile),
		LogLevel:           value("LOG_LEVEL", DefaultLogLevel),
		StockAlertSchedule: value("STOCK_ALERT_SCHEDULE", DefaultStockAlertSchedule),
		KafkaBrokers:       splitList(getenv("KAFKA_BROKERS")),
		KafkaTopic:         value("KAFKA_TOPIC", DefaultKafkaTopic),
		ServiceName:        value("SERVICE_NAME", DefaultServiceName),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
